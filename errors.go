package driverelay

import "fmt"

// ErrorDetail is one entry in an error envelope's detail list. The shape
// follows the provider's own error items so provider details can be passed
// through unchanged.
type ErrorDetail struct {
	Message      string `json:"message"`
	Reason       string `json:"reason,omitempty"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

// AuthError means the request carried no usable credential, or the provider
// rejected the one it carried.
type AuthError struct {
	Details []ErrorDetail
}

func (e *AuthError) Error() string { return "invalid credentials" }

// ValidationError means a required request field was missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NotFoundError means the local file named by the request does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// ProviderError carries a structured rejection from the provider API. Status
// and Message always have usable values; callers relay them as-is.
type ProviderError struct {
	Status  int
	Message string
	Details []ErrorDetail
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Status, e.Message)
}

// Any error outside the types above is treated as internal: local I/O faults
// during streaming, transport failures, encoding bugs. The HTTP layer maps
// those to a 500 with the error's own message.
