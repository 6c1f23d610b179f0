// Package rbac decides whether a verified session identity may act on a
// resource. Decisions are pure functions of the identity, the resource and
// the target id: the gate performs no I/O and a denial is terminal for the
// request.
package rbac

import (
	"errors"

	"github.com/ayushbridge/ayushbridge/internal/domain"
)

var ErrForbidden = errors.New("forbidden: insufficient permissions")

// Resource names a protected operation.
type Resource string

const (
	ResourceOwnProfile     Resource = "own_profile"
	ResourceListPatients   Resource = "patients:list"
	ResourceListDoctors    Resource = "doctors:list"
	ResourceReadRecords    Resource = "records:read"
	ResourceWriteRecords   Resource = "records:write"
	ResourceAssignedDoctor Resource = "assigned_doctor:read"
	ResourceInsurance      Resource = "insurance:read"
	ResourceAuditLog       Resource = "audit_log:read"
)

// Authorize returns nil when the identity may access the resource and
// ErrForbidden otherwise. targetID is the patient the request is about and
// is ignored for resources that have no target.
func Authorize(identity domain.Claims, resource Resource, targetID string) error {
	switch resource {
	case ResourceOwnProfile:
		// Any authenticated identity can read its own profile.
		return nil

	case ResourceListPatients, ResourceListDoctors:
		if identity.Role == domain.RoleDoctor {
			return nil
		}

	case ResourceReadRecords, ResourceAssignedDoctor, ResourceInsurance:
		if identity.Role == domain.RoleDoctor {
			return nil
		}
		if identity.Role == domain.RolePatient && identity.UserID == targetID {
			return nil
		}

	case ResourceWriteRecords:
		// Any doctor may write, not only the assigned one.
		if identity.Role == domain.RoleDoctor {
			return nil
		}

	case ResourceAuditLog:
		if identity.Role == domain.RoleAdmin {
			return nil
		}
	}

	return ErrForbidden
}
