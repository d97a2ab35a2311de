package dto

// HealthCheckRequest represents request for health check
type HealthCheckRequest struct {
	// No body fields
}

// HealthCheckResponse is the liveness contract: status is always "ok" while
// the process is serving, service identifies which deployment answered.
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
