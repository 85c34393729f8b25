package request

// CalculateRequest represents the request body for a one-shot calculation.
// RateSelection is a preset ("20", "5", "0") or "custom"; CustomRate is only
// read for "custom".
type CalculateRequest struct {
	Amount        string `json:"amount"`
	RateSelection string `json:"rateSelection"`
	CustomRate    string `json:"customRate"`
	Mode          string `json:"calculationType"`
}

// TextInputRequest carries the raw text of a form field after an edit.
// Used for both the amount and the custom rate.
type TextInputRequest struct {
	Value *string `json:"value"`
}

type RateSelectionRequest struct {
	Selection string `json:"selection"`
}

type ModeRequest struct {
	Mode string `json:"calculationType"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}
