// Package menu decides which panel sections a signed-in user may see.
// Filtering here is cosmetic; the server re-checks the role on every call.
package menu

import (
	"github.com/stocklane/inventory-system/internal/core/domain"
)

// Entry is one navigable section of the panel.
type Entry struct {
	Name    string
	Command string
	// Roles lists who may see the entry. Empty means any privileged role.
	Roles []string
}

var entries = []Entry{
	{Name: "Dashboard", Command: "overview"},
	{Name: "Inventory", Command: "items"},
	{Name: "Sales", Command: "sales"},
	{Name: "Buyers & Suppliers", Command: "entities"},
	{Name: "Users", Command: "users", Roles: []string{domain.RoleAdmin}},
}

// Visible returns the menu entries the user may see. An unauthenticated or
// unprivileged user sees nothing.
func Visible(user *domain.User) []Entry {
	if user == nil || !domain.PrivilegedRole(user.Role) {
		return nil
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if allowed(e, user.Role) {
			out = append(out, e)
		}
	}
	return out
}

// CanChangeRoles reports whether the user may manage other accounts.
func CanChangeRoles(user *domain.User) bool {
	return user != nil && user.Role == domain.RoleAdmin
}

func allowed(e Entry, role string) bool {
	if len(e.Roles) == 0 {
		return true
	}
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}
