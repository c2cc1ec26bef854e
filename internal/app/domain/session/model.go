package session

// Session maps a bearer token to a logged-in user. The session id doubles as
// the token; there is at most one active session per user.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}
