package domain

// LineItem is one row of the eventual spreadsheet. The *_raw fields carry
// whatever the model returned, verbatim; quantity is only coerced to a number
// at render time.
type LineItem struct {
	DescriptionRaw string `json:"description_raw"`
	SizeRaw        string `json:"size_raw"`
	QuantityRaw    string `json:"quantity_raw"`
	UOMRaw         string `json:"uom_raw"`
	Include        bool   `json:"include"`
}

// ExtractionResult is the outcome of one upload. An empty Items slice means
// "no items recoverable" (scanned document, model refusal, unparsable output)
// and is a valid, successful outcome.
type ExtractionResult struct {
	Items []LineItem `json:"items"`
}
