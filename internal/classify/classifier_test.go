package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanvault/scanvault/constants"
)

func mustTable(t *testing.T, rules []Rule) *RuleTable {
	t.Helper()
	table, err := NewRuleTable(rules)
	require.NoError(t, err)
	return table
}

func TestClassifyEmptyText(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, constants.TypeOther, Classify("", table))
	assert.Equal(t, constants.TypeOther, Classify("   \n\t", table))
}

func TestClassifyHighestScoreWins(t *testing.T) {
	table := mustTable(t, []Rule{
		{Type: "A", Keywords: []Keyword{{Phrase: "foo", Weight: 10}}},
		{Type: "B", Keywords: []Keyword{{Phrase: "bar", Weight: 10}, {Phrase: "foo", Weight: 1}}},
	})
	// A scores 10, B scores 11.
	assert.Equal(t, "B", Classify("foo bar", table))
}

func TestClassifyTieKeepsFirstDeclaredType(t *testing.T) {
	table := mustTable(t, []Rule{
		{Type: "A", Keywords: []Keyword{{Phrase: "x", Weight: 5}}},
		{Type: "B", Keywords: []Keyword{{Phrase: "x", Weight: 5}}},
	})
	assert.Equal(t, "A", Classify("x", table))

	// Swapping declaration order swaps the winner.
	swapped := mustTable(t, []Rule{
		{Type: "B", Keywords: []Keyword{{Phrase: "x", Weight: 5}}},
		{Type: "A", Keywords: []Keyword{{Phrase: "x", Weight: 5}}},
	})
	assert.Equal(t, "B", Classify("x", swapped))
}

func TestClassifyNoMatchesReturnsOther(t *testing.T) {
	table := mustTable(t, []Rule{
		{Type: "A", Keywords: []Keyword{{Phrase: "electricity", Weight: 10}}},
	})
	assert.Equal(t, constants.TypeOther, Classify("completely unrelated text", table))
}

func TestClassifyCaseInsensitiveSubstring(t *testing.T) {
	table := mustTable(t, []Rule{
		{Type: "Bill", Keywords: []Keyword{{Phrase: "KWh", Weight: 3}}},
	})
	assert.Equal(t, "Bill", Classify("usage this month: 120 kwh total", table))
	assert.Equal(t, "Bill", Classify("USAGE 120 KWH", table))
}

func TestClassifyKeywordCountsOnce(t *testing.T) {
	table := mustTable(t, []Rule{
		{Type: "A", Keywords: []Keyword{{Phrase: "foo", Weight: 2}}},
		{Type: "B", Keywords: []Keyword{{Phrase: "bar", Weight: 3}}},
	})
	// "foo" three times still scores 2, so B's single "bar" wins.
	assert.Equal(t, "B", Classify("foo foo foo bar", table))
}

func TestClassifyDeterministic(t *testing.T) {
	table := DefaultTable()
	text := "electricity bill for billing period march, 245 kwh, meter reading 88812"
	first := Classify(text, table)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Classify(text, table))
	}
}
