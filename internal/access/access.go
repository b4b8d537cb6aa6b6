// Package access decides who may touch a task and turns list query
// parameters into a store filter. Everything here is pure computation;
// repositories translate the results into SQL.
package access

import "github.com/Ijadele/task-management/internal/constants"

// CanAccess reports whether the caller may read or mutate a resource owned
// by ownerID. Admins bypass ownership; everyone else must own the resource.
func CanAccess(callerID string, role constants.Role, ownerID string) bool {
	if role == constants.RoleAdmin {
		return true
	}
	return callerID == ownerID
}
