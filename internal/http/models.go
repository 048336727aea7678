package http

import "webapp-auth-backend/internal/initdata"

// InitDataResponse wraps the validated payload.
type InitDataResponse struct {
	Message initdata.InitData `json:"message"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
