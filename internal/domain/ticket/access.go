package ticket

import "mangedesk/internal/domain/user"

// VisibleTo returns the subset of tickets the identity may see, preserving
// input order. Staff identities see everything; other identities see
// tickets they requested or are responsible for, each ticket at most once
// even when both conditions hold. Anonymous identities see nothing, which
// is an empty result rather than an error. The function has no side
// effects.
func VisibleTo(identity user.Identity, tickets []*Ticket) []*Ticket {
	visible := make([]*Ticket, 0, len(tickets))
	if identity.IsAnonymous() {
		return visible
	}

	for _, t := range tickets {
		if t.CanBeViewedBy(identity) {
			visible = append(visible, t)
		}
	}
	return visible
}
