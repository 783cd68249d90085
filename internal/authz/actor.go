package authz

// Actor is the authenticated user attached to a request. It is built once
// from the session claims and passed explicitly into handlers and services;
// there is no ambient current-user global.
type Actor struct {
	UserID string
	Admin  bool
	grants map[Capability]struct{}
}

func NewActor(userID string, admin bool, grants []Capability) Actor {
	set := make(map[Capability]struct{}, len(grants))
	for _, g := range grants {
		set[g] = struct{}{}
	}
	return Actor{UserID: userID, Admin: admin, grants: set}
}

// Can reports whether the actor may perform the capability. The admin role
// bypasses all individual grants.
func (a Actor) Can(c Capability) bool {
	if a.Admin {
		return true
	}
	_, ok := a.grants[c]
	return ok
}

// Grants returns the direct grants, in no particular order. Used when the
// actor is serialized back into token claims.
func (a Actor) Grants() []Capability {
	out := make([]Capability, 0, len(a.grants))
	for g := range a.grants {
		out = append(out, g)
	}
	return out
}
