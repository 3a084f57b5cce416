package user

// Identity is the resolved caller identity passed explicitly to every core
// operation. The authentication layer produces it; the core never reads
// ambient request state.
type Identity struct {
	UserID  uint
	IsStaff bool
}

// Anonymous returns the identity of an unauthenticated caller.
func Anonymous() Identity {
	return Identity{}
}

func (i Identity) IsAnonymous() bool {
	return i.UserID == 0
}
