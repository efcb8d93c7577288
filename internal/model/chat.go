package model

// ChatRequest represents a single chat turn from the user
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	LastClass string `json:"last_class,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// ChatResponse represents the assistant's reply for one chat turn
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ConversationContext carries the caller-supplied memory of the last
// detected item. It is rebuilt from each request and never stored
// server-side.
type ConversationContext struct {
	LastClass string
	LastName  string
}

// FeedbackRequest represents user feedback on a recommendation
type FeedbackRequest struct {
	AnalysisID string `json:"analysis_id" binding:"required"`
	Action     string `json:"action" binding:"required"` // helpful, not_helpful, wrong_item
	Comment    string `json:"comment,omitempty"`
}

// FeedbackResponse represents feedback response
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
