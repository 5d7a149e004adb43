package models

// Error is the JSON error envelope returned on every failed request.
type Error struct {
	Message string `json:"error"`
}
