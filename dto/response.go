package dto

import "errors"

// Custom errors
var (
	ErrUnsupportedFileType       = errors.New("unsupported file type")
	ErrMissingFile               = errors.New("no file uploaded")
	ErrExtractionFailure         = errors.New("document text extraction failed")
	ErrProviderFailure           = errors.New("language model call failed")
	ErrMalformedExtractionOutput = errors.New("extraction output is not a JSON array")
	ErrMissingAPIKey             = errors.New("language model api key not configured")
	ErrInvalidTransaction        = errors.New("invalid transaction")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type ChatResponse struct {
	Message string `json:"message"`
}

type ImportResponse struct {
	Imported     int           `json:"imported"`
	Transactions []Transaction `json:"transactions"`
}

type GSTResponse struct {
	Base float64 `json:"base"`
	Tax  float64 `json:"tax"`
	Rate int     `json:"rate"`
}

type GSTRateEntry struct {
	Label string `json:"label"`
	Rate  int    `json:"rate"`
}

type TaxLiabilityResponse struct {
	Regime        Regime  `json:"regime"`
	TaxableIncome float64 `json:"taxableIncome"`
	Tax           float64 `json:"tax"`
}

type RegimeComparison struct {
	Old         TaxLiabilityResponse `json:"old"`
	New         TaxLiabilityResponse `json:"new"`
	Recommended Regime               `json:"recommended"`
	Savings     float64              `json:"savings"`
}
