package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayushbridge/ayushbridge/internal/domain"
	"github.com/ayushbridge/ayushbridge/internal/domain/record"
	"github.com/ayushbridge/ayushbridge/internal/domain/terminology"
	"github.com/ayushbridge/ayushbridge/internal/rbac"
)

// RecordService orchestrates the access gate, the record store and the
// terminology index to serve enriched record views and accept new records.
type RecordService struct {
	repo     record.Repository
	userRepo UserRepository
	dict     *terminology.Index
	log      *zap.Logger
}

func NewRecordService(repo record.Repository, userRepo UserRepository, dict *terminology.Index, log *zap.Logger) *RecordService {
	return &RecordService{
		repo:     repo,
		userRepo: userRepo,
		dict:     dict,
		log:      log,
	}
}

// ListRecords returns the patient's records in insertion order, each joined
// against the dictionary at read time.
func (s *RecordService) ListRecords(ctx context.Context, patientID string, caller domain.Claims) ([]record.EnrichedRecord, error) {
	if err := rbac.Authorize(caller, rbac.ResourceReadRecords, patientID); err != nil {
		return nil, err
	}

	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	enriched := make([]record.EnrichedRecord, 0, len(records))
	for _, r := range records {
		enriched = append(enriched, s.enrich(r))
	}
	return enriched, nil
}

// AddRecord appends a new coded note for the patient on behalf of the
// calling doctor. Unknown dictionary codes are accepted and enriched with
// placeholders; the code is not validated against the dictionary.
func (s *RecordService) AddRecord(ctx context.Context, patientID string, cmd record.CreateRecordCommand, caller domain.Claims) (*record.EnrichedRecord, error) {
	if err := rbac.Authorize(caller, rbac.ResourceWriteRecords, patientID); err != nil {
		return nil, err
	}

	var missing []string
	if strings.TrimSpace(cmd.NamasteCode) == "" {
		missing = append(missing, "namaste_code")
	}
	if strings.TrimSpace(cmd.Note) == "" {
		missing = append(missing, "note")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	r := record.ClinicalRecord{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		DoctorID:    caller.UserID,
		NamasteCode: cmd.NamasteCode,
		Note:        cmd.Note,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, &r); err != nil {
		s.log.Error("failed to persist record",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("persisting record: %w", err)
	}

	s.log.Info("record created",
		zap.String("record_id", r.ID),
		zap.String("patient_id", patientID),
		zap.String("doctor_id", caller.UserID),
		zap.String("namaste_code", r.NamasteCode),
	)

	enriched := s.enrich(r)
	return &enriched, nil
}

// AssignedDoctor resolves the patient's doctor. The assignment is derived,
// not stored: it is the doctor on the patient's oldest record. No record,
// or a record pointing at a doctor the identity table no longer knows, is
// reported as not-found rather than an internal error.
func (s *RecordService) AssignedDoctor(ctx context.Context, patientID string, caller domain.Claims) (*domain.SanitizedUser, error) {
	if err := rbac.Authorize(caller, rbac.ResourceAssignedDoctor, patientID); err != nil {
		return nil, err
	}

	first, err := s.repo.FirstByPatient(ctx, patientID)
	if err != nil {
		return nil, record.ErrNoDoctorAssigned
	}

	doctor, err := s.userRepo.GetByID(ctx, first.DoctorID)
	if err != nil {
		s.log.Warn("record references unknown doctor",
			zap.String("patient_id", patientID),
			zap.String("doctor_id", first.DoctorID),
		)
		return nil, record.ErrNoDoctorAssigned
	}

	sanitized := doctor.Sanitized()
	return &sanitized, nil
}

// Insurance returns the patient's coverage view. Coverage is synthesized
// from the patient id; there is no insurance table.
func (s *RecordService) Insurance(ctx context.Context, patientID string, caller domain.Claims) (*domain.Insurance, error) {
	if err := rbac.Authorize(caller, rbac.ResourceInsurance, patientID); err != nil {
		return nil, err
	}

	return &domain.Insurance{
		Provider:     "HealthCare Co.",
		PolicyNumber: "POL-" + strings.ToUpper(patientID),
		ValidTill:    "2026-12-31",
		Coverage:     "General + Specialist",
	}, nil
}

func (s *RecordService) enrich(r record.ClinicalRecord) record.EnrichedRecord {
	tm2, biomed := s.dict.Enrich(r.NamasteCode)
	return record.EnrichedRecord{
		ClinicalRecord: r,
		ICD11TM2:       tm2,
		ICD11Biomed:    biomed,
	}
}
