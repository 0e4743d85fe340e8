package classify

// DefaultTable returns the built-in rule table for electricity-customer
// paperwork. Deployments override it with RULE_TABLE_PATH.
func DefaultTable() *RuleTable {
	t, err := NewRuleTable([]Rule{
		{
			Type: "NationalID",
			Keywords: []Keyword{
				{Phrase: "national id", Weight: 10},
				{Phrase: "identity card", Weight: 10},
				{Phrase: "date of birth", Weight: 5},
				{Phrase: "nationality", Weight: 3},
			},
		},
		{
			Type: "ElectricityBill",
			Keywords: []Keyword{
				{Phrase: "electricity bill", Weight: 10},
				{Phrase: "kwh", Weight: 8},
				{Phrase: "meter reading", Weight: 6},
				{Phrase: "tariff", Weight: 4},
				{Phrase: "billing period", Weight: 3},
			},
		},
		{
			Type: "Contract",
			Keywords: []Keyword{
				{Phrase: "supply contract", Weight: 10},
				{Phrase: "terms and conditions", Weight: 6},
				{Phrase: "signature", Weight: 3},
				{Phrase: "party of the", Weight: 3},
			},
		},
		{
			Type: "PaymentReceipt",
			Keywords: []Keyword{
				{Phrase: "payment receipt", Weight: 10},
				{Phrase: "amount paid", Weight: 6},
				{Phrase: "cashier", Weight: 4},
				{Phrase: "transaction", Weight: 2},
			},
		},
		{
			Type: "OwnershipProof",
			Keywords: []Keyword{
				{Phrase: "title deed", Weight: 10},
				{Phrase: "property", Weight: 4},
				{Phrase: "lease agreement", Weight: 8},
				{Phrase: "landlord", Weight: 4},
			},
		},
	})
	if err != nil {
		// The built-in table is static data; a validation failure here
		// is a programming error.
		panic(err)
	}
	return t
}
