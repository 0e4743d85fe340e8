package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTableValid(t *testing.T) {
	src := `{
	  "types": [
	    {"type": "ElectricityBill", "keywords": [{"phrase": "kwh", "weight": 8}]},
	    {"type": "Contract", "keywords": [{"phrase": "supply contract", "weight": 10}, {"phrase": "signature", "weight": 3}]}
	  ]
	}`
	table, err := LoadTable(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"ElectricityBill", "Contract"}, table.Types())
	require.Len(t, table.Rules()[1].Keywords, 2)
	assert.Equal(t, 10, table.Rules()[1].Keywords[0].Weight)
}

func TestLoadTableRejectsNonPositiveWeight(t *testing.T) {
	src := `{"types": [{"type": "A", "keywords": [{"phrase": "x", "weight": 0}]}]}`
	_, err := LoadTable(strings.NewReader(src))
	require.Error(t, err)
}

func TestLoadTableRejectsEmptyKeywordList(t *testing.T) {
	src := `{"types": [{"type": "A", "keywords": []}]}`
	_, err := LoadTable(strings.NewReader(src))
	require.Error(t, err)
}

func TestLoadTableRejectsMalformedJSON(t *testing.T) {
	_, err := LoadTable(strings.NewReader(`{"types": [`))
	require.Error(t, err)
}

func TestNewRuleTableRejectsDuplicates(t *testing.T) {
	_, err := NewRuleTable([]Rule{
		{Type: "A", Keywords: []Keyword{{Phrase: "x", Weight: 1}}},
		{Type: "A", Keywords: []Keyword{{Phrase: "y", Weight: 1}}},
	})
	require.Error(t, err)
}

func TestNewRuleTableRejectsReservedLabel(t *testing.T) {
	_, err := NewRuleTable([]Rule{
		{Type: "Unclassified", Keywords: []Keyword{{Phrase: "x", Weight: 1}}},
	})
	require.Error(t, err)
}

func TestDefaultTableIsValid(t *testing.T) {
	table := DefaultTable()
	assert.NotEmpty(t, table.Rules())
}
