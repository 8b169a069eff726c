package types

// FlowErrorResponse is returned when a flow invocation fails.
type FlowErrorResponse struct {
	Success    bool   `json:"success" example:"false"`
	Error      string `json:"error" example:"schema violation: field \"interests\" must not be blank"`
	Field      string `json:"field,omitempty" example:"interests"`
	Constraint string `json:"constraint,omitempty" example:"must not be blank"`
	RequestID  string `json:"request_id,omitempty"`
}

// FlowSummary describes a registered flow.
type FlowSummary struct {
	Name        string   `json:"name" example:"generateItinerary"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
}
