package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitRunExtractor(t *testing.T) {
	ex := NewDigitRunExtractor(11)

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{name: "empty text", text: "", want: "", ok: false},
		{name: "no digits", text: "electricity bill march", want: "", ok: false},
		{name: "plain match", text: "customer no 12345678901 due", want: "12345678901", ok: true},
		{name: "match at start", text: "12345678901 is the account", want: "12345678901", ok: true},
		{name: "match at end", text: "account: 12345678901", want: "12345678901", ok: true},
		{name: "longer run rejected", text: "serial 1234567890123", want: "", ok: false},
		{name: "shorter run rejected", text: "ref 1234567890", want: "", ok: false},
		{name: "first of several wins", text: "a 11111111111 b 22222222222", want: "11111111111", ok: true},
		{name: "skips long run then matches", text: "meter 123456789012 cust 98765432109", want: "98765432109", ok: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ex.ExtractCustomerID(tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDigitRunExtractorCustomLength(t *testing.T) {
	ex := NewDigitRunExtractor(6)
	got, ok := ex.ExtractCustomerID("acct 123456 end")
	assert.True(t, ok)
	assert.Equal(t, "123456", got)
}

func TestDigitRunExtractorDefaultLength(t *testing.T) {
	ex := NewDigitRunExtractor(0)
	_, ok := ex.ExtractCustomerID("ref 12345678901")
	assert.True(t, ok)
}
