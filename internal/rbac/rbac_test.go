package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayushbridge/ayushbridge/internal/domain"
)

func TestAuthorize(t *testing.T) {
	doctor := domain.Claims{UserID: "d1", Role: domain.RoleDoctor}
	patient := domain.Claims{UserID: "p1", Role: domain.RolePatient}
	otherPatient := domain.Claims{UserID: "p2", Role: domain.RolePatient}
	admin := domain.Claims{UserID: "a1", Role: domain.RoleAdmin}

	tests := []struct {
		name     string
		identity domain.Claims
		resource Resource
		targetID string
		allowed  bool
	}{
		{"doctor reads own profile", doctor, ResourceOwnProfile, "d1", true},
		{"patient reads own profile", patient, ResourceOwnProfile, "p1", true},
		{"admin reads own profile", admin, ResourceOwnProfile, "a1", true},

		{"doctor lists patients", doctor, ResourceListPatients, "", true},
		{"patient lists patients", patient, ResourceListPatients, "", false},
		{"admin lists patients", admin, ResourceListPatients, "", false},
		{"doctor lists doctors", doctor, ResourceListDoctors, "", true},
		{"patient lists doctors", patient, ResourceListDoctors, "", false},

		{"doctor reads any patient records", doctor, ResourceReadRecords, "p1", true},
		{"patient reads own records", patient, ResourceReadRecords, "p1", true},
		{"patient reads foreign records", otherPatient, ResourceReadRecords, "p1", false},
		{"admin reads patient records", admin, ResourceReadRecords, "p1", false},

		{"doctor writes records", doctor, ResourceWriteRecords, "p1", true},
		{"patient writes own records", patient, ResourceWriteRecords, "p1", false},
		{"admin writes records", admin, ResourceWriteRecords, "p1", false},

		{"doctor reads assigned doctor", doctor, ResourceAssignedDoctor, "p1", true},
		{"patient reads own assigned doctor", patient, ResourceAssignedDoctor, "p1", true},
		{"patient reads foreign assigned doctor", otherPatient, ResourceAssignedDoctor, "p1", false},

		{"doctor reads insurance", doctor, ResourceInsurance, "p1", true},
		{"patient reads own insurance", patient, ResourceInsurance, "p1", true},
		{"patient reads foreign insurance", otherPatient, ResourceInsurance, "p1", false},

		{"admin reads audit log", admin, ResourceAuditLog, "", true},
		{"doctor reads audit log", doctor, ResourceAuditLog, "", false},
		{"patient reads audit log", patient, ResourceAuditLog, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.identity, tt.resource, tt.targetID)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
		})
	}
}

func TestAuthorize_UnknownResourceDenied(t *testing.T) {
	admin := domain.Claims{UserID: "a1", Role: domain.RoleAdmin}
	assert.ErrorIs(t, Authorize(admin, Resource("nonsense"), ""), ErrForbidden)
}
