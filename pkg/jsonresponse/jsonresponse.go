// Package jsonresponse enables consistent responses across all handlers.
package jsonresponse

// ErrorList is the error envelope returned by all endpoints.
type ErrorList struct {
	Errors []string `json:"errors"`
}

// Error wraps a single err into the error list envelope.
func Error(err error) ErrorList {
	return ErrorList{Errors: []string{err.Error()}}
}

// Errors wraps a list of messages into the error list envelope.
func Errors(msgs []string) ErrorList {
	return ErrorList{Errors: msgs}
}
