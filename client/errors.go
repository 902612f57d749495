package client

import "fmt"

// ConfigurationError reports an unusable instance URL or an incompatible
// remote instance at construction time.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// TransportError reports a network-level failure: connection refused, reset,
// timeout. The failed call leaves the client usable for subsequent calls.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport error: %v", e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not the JSON the contract
// promises. Body keeps the raw payload for diagnostics.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v: %q", e.Err, string(e.Body))
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ServerError carries an application-level error the instance reported in a
// well-formed response, e.g. an invalid domain.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return fmt.Sprintf("server error: %s", e.Message) }
