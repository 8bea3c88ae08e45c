// Package policy holds the pure authorization predicates consulted by every
// resource handler. None of these functions touch storage or have side
// effects; they decide over an already-resolved identity and the ownership
// fields of a resource.
package policy

import "github.com/studysync/studysync-api/model"

// CanModifyOwned reports whether actor may mutate or delete a resource owned
// by ownerID. Owner-exclusive resources (tasks, focus sessions) admit no
// admin override.
func CanModifyOwned(actor *model.User, ownerID string) bool {
	if actor == nil {
		return false
	}
	return actor.ID == ownerID
}

// CanModerateNote reports whether actor may delete a note owned by ownerID:
// the owner always can, and an admin can moderate any note.
func CanModerateNote(actor *model.User, ownerID string) bool {
	if actor == nil {
		return false
	}
	return actor.ID == ownerID || actor.IsAdmin()
}

// IsAdmin reports whether actor holds the admin role. A false result maps to
// Forbidden at the call site, distinct from Unauthenticated.
func IsAdmin(actor *model.User) bool {
	return actor != nil && actor.IsAdmin()
}
