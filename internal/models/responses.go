package models

// JSONErrorData is the error body of the JSON endpoints
type JSONErrorData struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// JSONSuccessData is the success body of the JSON endpoints
type JSONSuccessData struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
