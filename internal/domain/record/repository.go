package record

import "context"

type Repository interface {
	// Append stores a new record and synchronously persists the whole store.
	Append(ctx context.Context, r *ClinicalRecord) error

	// ListByPatient returns the patient's records in insertion order.
	ListByPatient(ctx context.Context, patientID string) ([]ClinicalRecord, error)

	// FirstByPatient returns the patient's oldest record.
	// Returns ErrRecordNotFound if the patient has none.
	FirstByPatient(ctx context.Context, patientID string) (*ClinicalRecord, error)

	// All returns every record in insertion order.
	All(ctx context.Context) ([]ClinicalRecord, error)
}
