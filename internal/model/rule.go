package model

// DisposalRule represents static disposal guidance for one item class
type DisposalRule struct {
	DisplayName   string   `json:"display_name"`
	Category      string   `json:"category"`
	DisposalSteps []string `json:"disposal_steps"`
	Hazards       string   `json:"hazards,omitempty"`
	Tips          string   `json:"tips,omitempty"`
}

// RuleSummary represents a short rule listing entry for the UI
type RuleSummary struct {
	Class       string `json:"class"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
}
