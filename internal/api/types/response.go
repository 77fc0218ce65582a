// internal/api/types/response.go
package types

// MessageResponse is the standard JSON envelope for non-data responses.
// Error carries server-side failure detail and is omitted otherwise.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
