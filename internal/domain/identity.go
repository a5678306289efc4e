package domain

// Actor is the verified identity a request runs as. It is threaded through
// every engine call; there is no ambient current user.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) Is(role Role) bool { return a.Role == role }
