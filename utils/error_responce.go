package utils

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
