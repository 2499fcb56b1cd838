package models

// InvestmentRequest is the investor profile submitted for an allocation
// recommendation. No validation beyond JSON type constraints is applied.
type InvestmentRequest struct {
	Age              int     `json:"age"`
	InvestmentAmount float64 `json:"investment_amount"`
	MarketForecast   *string `json:"market_forecast,omitempty"`
}

// AllocationResult is the structured outcome recovered from a model response.
// Percentages are not required to sum to 100. The mapping defaults to
// {"Cash": 100} only when every extraction strategy fails.
type AllocationResult struct {
	Allocation  map[string]float64 `json:"allocation"`
	Explanation string             `json:"explanation"`
}

// AllocationResponse is the wire shape returned by the allocation endpoint.
type AllocationResponse struct {
	AllocationPercentage map[string]float64 `json:"allocation_percentage"`
	Recommendation       string             `json:"recommendation"`
}

// ErrorResponse carries a failure detail message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
