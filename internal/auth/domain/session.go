package domain

// Identity is the user-facing profile returned by the backend. It is
// replaced wholesale on the next login, never mutated in place.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session pairs the current identity with its opaque session token.
// Either both fields are set or both are zero; the session store is the
// only writer and enforces that.
type Session struct {
	Identity *Identity
	Token    string
}

func (s Session) Active() bool {
	return s.Token != "" && s.Identity != nil
}
