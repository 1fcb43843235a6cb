package dto

// Response is the uniform envelope returned by every character, weapon and
// skill operation. A failed operation carries success=false and a
// human-readable message; data stays unset. Use pointer or slice payloads so
// omitempty actually drops data on failure.
type Response[T any] struct {
	Data    T      `json:"data,omitempty"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK wraps a successful payload.
func OK[T any](data T) Response[T] {
	return Response[T]{Data: data, Success: true}
}

// Fail builds a failure envelope with no payload.
func Fail[T any](message string) Response[T] {
	return Response[T]{Success: false, Message: message}
}
