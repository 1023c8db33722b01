package models

// UserRequest is one entry in a user's recent-activity list.
type UserRequest struct {
	RequestID string `json:"request_id"`
	Method    string `json:"method"`
	Route     string `json:"route"`
}
