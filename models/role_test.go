package models

import (
	"reflect"
	"testing"
)

func TestPermissionTable(t *testing.T) {
	cases := []struct {
		role string
		want []string
	}{
		{RoleAdmin, []string{"manage_users", "manage_rooms", "manage_bookings", "manage_staff", "view_reports"}},
		{RoleReceptionist, []string{"manage_bookings", "view_rooms", "check_in_guest", "check_out_guest"}},
		{RoleGuest, []string{"view_rooms", "book_room", "cancel_booking", "view_own_bookings"}},
		{RoleStaff, []string{"view_schedule", "update_profile", "view_assigned_tasks"}},
	}
	for _, tc := range cases {
		if got := PermissionsFor(tc.role); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("PermissionsFor(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestPermissionsForUnknownRoleIsEmpty(t *testing.T) {
	if got := PermissionsFor("manager"); len(got) != 0 {
		t.Fatalf("expected empty permission set, got %v", got)
	}
}

func TestHasPermission(t *testing.T) {
	if !HasPermission(RoleGuest, PermBookRoom) {
		t.Fatal("guest should be able to book rooms")
	}
	if HasPermission(RoleStaff, PermManageBookings) {
		t.Fatal("staff should not manage bookings")
	}
	if HasPermission(RoleReceptionist, PermManageStaff) {
		t.Fatal("receptionist should not manage staff")
	}
	if !HasPermission(RoleAdmin, PermManageStaff) {
		t.Fatal("admin should manage staff")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleReceptionist, RoleGuest, RoleStaff} {
		if !ValidRole(role) {
			t.Fatalf("expected %q to be a valid role", role)
		}
	}
	if ValidRole("manager") {
		t.Fatal("manager should not be a valid role")
	}
}

func TestGreetingVariesByRole(t *testing.T) {
	cases := []struct {
		user User
		want string
	}{
		{User{Username: "admin", Role: RoleAdmin}, "Administrator admin accessed admin panel"},
		{User{Username: "reception", Role: RoleReceptionist}, "Receptionist reception accessed reception system"},
		{User{Username: "john_guest", Role: RoleGuest}, "Guest john_guest welcomed to SmartStay Hotel"},
		{User{Username: "housekeeping", Role: RoleStaff, Position: "Housekeeping"}, "Staff housekeeping (Housekeeping) clocked in"},
		{User{Username: "mystery", Role: "other"}, "mystery logged in successfully"},
	}
	for _, tc := range cases {
		if got := tc.user.Greeting(); got != tc.want {
			t.Fatalf("Greeting() = %q, want %q", got, tc.want)
		}
	}
}

func TestRoleTitle(t *testing.T) {
	if got := RoleTitle(RoleAdmin); got != "Administrator" {
		t.Fatalf("RoleTitle(admin) = %q", got)
	}
	if got := RoleTitle("other"); got != "other" {
		t.Fatalf("unknown roles should pass through, got %q", got)
	}
}
