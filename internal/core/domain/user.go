package domain

// User is the authenticated owner of the session.
type User struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Session pairs the authenticated user with their API token, as returned by
// the auth endpoints and as persisted in durable client-side storage.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
