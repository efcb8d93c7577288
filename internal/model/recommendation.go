package model

// ClassificationResult represents the winning class for one analyzed image
type ClassificationResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Recommendation represents the disposal guidance returned for one image
type Recommendation struct {
	AnalysisID           string   `json:"analysis_id,omitempty"`
	ProductName          string   `json:"product_name"`
	PredictedClass       string   `json:"predicted_class"`
	Confidence           float64  `json:"confidence"`
	Category             string   `json:"category"`
	DisposalSteps        []string `json:"disposal_steps"`
	Hazards              string   `json:"hazards"`
	Tips                 string   `json:"tips"`
	NearestRecyclingLink string   `json:"nearest_recycling_link,omitempty"`
}
