package models

// Response is the envelope wrapping every API response.
// Data is omitted from error responses.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// AuthResponse is the payload returned by registration and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// VersionResponse is the payload returned by GET /v1/version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
