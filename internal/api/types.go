// Package api defines the JSON request and response types shared by the
// HTTP transport layer.
package api

// ErrorResponse is the uniform error body: a single "error" field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user (password never included).
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UploadFileRequest is the body of POST /files.
type UploadFileRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// FileResponse is the public view of a file document.
type FileResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}
