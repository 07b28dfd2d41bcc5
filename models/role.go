package models

// User roles. Fixed at account creation.
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleGuest        = "guest"
	RoleStaff        = "staff"
)

// Permissions gating mutating operations.
const (
	PermManageUsers       = "manage_users"
	PermManageRooms       = "manage_rooms"
	PermManageBookings    = "manage_bookings"
	PermManageStaff       = "manage_staff"
	PermViewReports       = "view_reports"
	PermViewRooms         = "view_rooms"
	PermCheckInGuest      = "check_in_guest"
	PermCheckOutGuest     = "check_out_guest"
	PermBookRoom          = "book_room"
	PermCancelBooking     = "cancel_booking"
	PermViewOwnBookings   = "view_own_bookings"
	PermViewSchedule      = "view_schedule"
	PermUpdateProfile     = "update_profile"
	PermViewAssignedTasks = "view_assigned_tasks"
)

var rolePermissions = map[string][]string{
	RoleAdmin: {
		PermManageUsers, PermManageRooms, PermManageBookings,
		PermManageStaff, PermViewReports,
	},
	RoleReceptionist: {
		PermManageBookings, PermViewRooms,
		PermCheckInGuest, PermCheckOutGuest,
	},
	RoleGuest: {
		PermViewRooms, PermBookRoom,
		PermCancelBooking, PermViewOwnBookings,
	},
	RoleStaff: {
		PermViewSchedule, PermUpdateProfile, PermViewAssignedTasks,
	},
}

var roleTitles = map[string]string{
	RoleAdmin:        "Administrator",
	RoleReceptionist: "Receptionist",
	RoleGuest:        "Guest",
	RoleStaff:        "Staff",
}

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// PermissionsFor returns the static permission set for a role. Unknown
// roles get an empty set.
func PermissionsFor(role string) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether the role's permission set includes perm.
func HasPermission(role, perm string) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// RoleTitle returns the display name for a role ("admin" -> "Administrator").
func RoleTitle(role string) string {
	if title, ok := roleTitles[role]; ok {
		return title
	}
	return role
}

// Greeting returns the cosmetic login message for a user, varying by role.
func (u *User) Greeting() string {
	switch u.Role {
	case RoleAdmin:
		return "Administrator " + u.Username + " accessed admin panel"
	case RoleReceptionist:
		return "Receptionist " + u.Username + " accessed reception system"
	case RoleGuest:
		return "Guest " + u.Username + " welcomed to SmartStay Hotel"
	case RoleStaff:
		return "Staff " + u.Username + " (" + u.Position + ") clocked in"
	default:
		return u.Username + " logged in successfully"
	}
}
