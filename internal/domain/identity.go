package domain

// Capability is a named permission checked before protected operations.
type Capability string

const (
	CapabilityEditor     Capability = "isEditor"
	CapabilitySuperadmin Capability = "superadmin"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UID          string
	DisplayName  string
	Capabilities map[Capability]struct{}
}

// NewIdentity builds the identity for a user holding role.
func NewIdentity(uid, displayName, role string) Identity {
	caps := make(map[Capability]struct{})
	switch role {
	case RoleSuperadmin:
		caps[CapabilitySuperadmin] = struct{}{}
		caps[CapabilityEditor] = struct{}{}
	case RoleEditor:
		caps[CapabilityEditor] = struct{}{}
	}
	return Identity{UID: uid, DisplayName: displayName, Capabilities: caps}
}

// Has reports whether the identity carries capability c.
func (i Identity) Has(c Capability) bool {
	_, ok := i.Capabilities[c]
	return ok
}

// IsEditor reports whether the identity may mutate articles.
func (i Identity) IsEditor() bool {
	return i.Has(CapabilityEditor)
}
