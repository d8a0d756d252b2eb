package models

// Session is the pair of bearer token and user profile representing an
// authenticated user. It is persisted as a single Redis value, so token and
// profile are written and removed together: a session is never half there.
type Session struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// IsComplete reports whether both halves of the session are present.
// An incomplete session is treated as unauthenticated.
func (s *Session) IsComplete() bool {
	return s != nil && s.Token != "" && s.User.ID != ""
}
