package domain

// Actor is the identity behind a request. The zero value is anonymous.
type Actor struct {
	UserID   string
	Username string
}

// Anonymous is the actor for requests that carry no credentials.
var Anonymous = Actor{}

// Authenticated reports whether the actor was established from a valid token.
func (a Actor) Authenticated() bool {
	return a.UserID != ""
}
