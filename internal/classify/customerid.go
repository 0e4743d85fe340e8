package classify

import (
	"fmt"
	"regexp"
)

// Extractor finds a customer identifier in OCR text. Implementations
// are interchangeable so the heuristic can be recalibrated against real
// sample text without touching callers.
type Extractor interface {
	// ExtractCustomerID returns the first high-confidence identifier
	// and true, or ("", false) when the text is empty or contains none.
	ExtractCustomerID(text string) (string, bool)
}

// DefaultCustomerIDLength matches the domain's fixed-format numeric
// customer numbers.
const DefaultCustomerIDLength = 11

// DigitRunExtractor matches the first standalone run of exactly Length
// digits. Runs embedded in longer digit sequences are rejected, so a
// meter serial of Length+2 digits never yields a false positive.
type DigitRunExtractor struct {
	length int
	re     *regexp.Regexp
}

// NewDigitRunExtractor builds an extractor for identifiers of the given
// digit count; length <= 0 selects DefaultCustomerIDLength.
func NewDigitRunExtractor(length int) *DigitRunExtractor {
	if length <= 0 {
		length = DefaultCustomerIDLength
	}
	return &DigitRunExtractor{
		length: length,
		re:     regexp.MustCompile(fmt.Sprintf(`(?:^|[^0-9])([0-9]{%d})(?:[^0-9]|$)`, length)),
	}
}

func (e *DigitRunExtractor) ExtractCustomerID(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	m := e.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
