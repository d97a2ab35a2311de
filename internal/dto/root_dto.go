package dto

// RootInfoRequest represents request for the root identity endpoint
type RootInfoRequest struct {
	// No body fields
}

// RootInfoResponse carries the human-readable service banner.
type RootInfoResponse struct {
	Message string `json:"message"`
}
