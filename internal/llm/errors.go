package llm

import "fmt"

// TransportError represents a network, timeout, or non-2xx failure calling
// the completion endpoint.
type TransportError struct {
	Message string
	Status  int
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("completion request failed: %s (status %d)", e.Message, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("completion request failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("completion request failed: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError represents a provider envelope that arrived but
// lacks the expected completion field.
type MalformedResponseError struct {
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed provider response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed provider response: %s", e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
