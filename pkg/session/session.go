package session

// User is the backend's user record as returned by the auth endpoints.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// Session is the persisted authentication record: one opaque bearer token and
// the user it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// IsAuthenticated reports whether the session carries a usable token.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// UnauthorizedEvent is broadcast when the transport observes a 401 response.
// From is the path of the request that failed, preserved for post-login
// redirect.
type UnauthorizedEvent struct {
	From string
}
