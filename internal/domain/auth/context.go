package auth

// UserContext is the authenticated identity carried through a request.
type UserContext struct {
	UserID   string
	RoleName string
}
