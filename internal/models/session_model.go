package models

// Session is the per-request view of an authenticated identity. IsAdmin is
// derived once, from a case-insensitive match against the single configured
// admin address; nothing else about the identity grants privileges.
type Session struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
