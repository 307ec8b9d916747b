// Package policy holds the authorization predicates guarding privileged
// actions. Services invoke them explicitly at the top of each mutation.
package policy

import "blogserver/internal/entity"

// IsAdministrator reports whether the identity holds the admin role. The role
// is assigned at registration (first registrant becomes admin) and never
// derived from insertion order afterwards.
func IsAdministrator(identity entity.SessionUser) bool {
	return !identity.IsAnonymous() && identity.Role == entity.RoleAdmin
}

// IsCommentOwner reports whether the identity authored exactly this comment.
func IsCommentOwner(identity entity.SessionUser, comment entity.Comment) bool {
	return !identity.IsAnonymous() && comment.AuthorID == identity.ID
}
