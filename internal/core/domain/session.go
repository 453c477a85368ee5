package domain

const (
	RoleAdministrator  = "administrator"
	RoleFieldVolunteer = "field_volunteer"
)

// Session is the explicit actor context passed to every mutating boundary
// call. The core never reads ambient session state.
type Session struct {
	Token string
	Role  string
}

// CanManageInventory reports whether the actor may apply deltas or transfer
// stock between districts.
func (s Session) CanManageInventory() bool {
	return s.Token != "" && s.Role == RoleAdministrator
}

// CanResolveRequests reports whether the actor may fulfill citizen requests.
func (s Session) CanResolveRequests() bool {
	return s.Token != "" && (s.Role == RoleAdministrator || s.Role == RoleFieldVolunteer)
}
