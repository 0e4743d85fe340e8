package constants

// Document type sentinels. Concrete type labels come from the rule
// table; these two are fixed regardless of configuration.
const (
	// TypeUnclassified marks a page whose classification task has not
	// settled yet.
	TypeUnclassified = "Unclassified"
	// TypeOther is the terminal label for pages that matched no rule,
	// or whose OCR failed.
	TypeOther = "Other"
)
