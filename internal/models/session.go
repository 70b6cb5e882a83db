package models

type SessionStatus string

const (
	SessionUninitialized   SessionStatus = "uninitialized"
	SessionVerifying       SessionStatus = "verifying"
	SessionAnonymous       SessionStatus = "anonymous"
	SessionAuthenticated   SessionStatus = "authenticated"
	SessionLoggingIn       SessionStatus = "logging_in"
	SessionRegistering     SessionStatus = "registering"
	SessionUpdatingProfile SessionStatus = "updating_profile"
)

// IsSteady reports whether no action is in flight.
func (s SessionStatus) IsSteady() bool {
	return s == SessionAnonymous || s == SessionAuthenticated
}

// Session is a point in time copy of the session manager state.
type Session struct {
	Status    SessionStatus `json:"status"`
	Token     *string       `json:"-"`
	User      *UserProfile  `json:"user,omitempty"`
	LastError string        `json:"last_error,omitempty"`
}

func (s Session) IsAuthenticated() bool {
	return s.Status == SessionAuthenticated && s.User != nil
}
