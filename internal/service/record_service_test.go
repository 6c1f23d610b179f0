package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ayushbridge/ayushbridge/internal/domain"
	"github.com/ayushbridge/ayushbridge/internal/domain/record"
	"github.com/ayushbridge/ayushbridge/internal/domain/terminology"
	"github.com/ayushbridge/ayushbridge/internal/rbac"
)

var (
	testDoctor       = domain.Claims{UserID: "d1", Role: domain.RoleDoctor}
	testPatient      = domain.Claims{UserID: "p1", Role: domain.RolePatient}
	testOtherPatient = domain.Claims{UserID: "p2", Role: domain.RolePatient}
)

func newRecordService(recordRepo *mockRecordRepo, users []domain.UserAccount) *RecordService {
	dict := terminology.NewIndex([]terminology.Entry{
		{Code: "NAM001", Display: "Grahani Roga", ICD11TM2: "TM2-A1"},
		{Code: "NAM002", Display: "Asthma", ICD11TM2: "TM2-B7", ICD11Biomed: "CA23"},
	})
	return NewRecordService(recordRepo, &mockUserRepo{users: users}, dict, zap.NewNop())
}

func TestRecordService_AddRecord_KnownCode(t *testing.T) {
	repo := &mockRecordRepo{}
	svc := newRecordService(repo, nil)

	saved, err := svc.AddRecord(context.Background(), "p1", record.CreateRecordCommand{
		NamasteCode: "NAM001",
		Note:        "digestive complaint",
	}, testDoctor)
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "p1", saved.PatientID)
	assert.Equal(t, "d1", saved.DoctorID)
	assert.Equal(t, "TM2-A1", saved.ICD11TM2)
	assert.Equal(t, "-", saved.ICD11Biomed)
	assert.False(t, saved.CreatedAt.IsZero())
	require.Len(t, repo.records, 1)
}

func TestRecordService_AddRecord_UnknownCodeAccepted(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{}, nil)

	saved, err := svc.AddRecord(context.Background(), "p1", record.CreateRecordCommand{
		NamasteCode: "UNKNOWN",
		Note:        "note",
	}, testDoctor)
	require.NoError(t, err)
	assert.Equal(t, "-", saved.ICD11TM2)
	assert.Equal(t, "-", saved.ICD11Biomed)
}

func TestRecordService_AddRecord_MissingFields(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{}, nil)

	_, err := svc.AddRecord(context.Background(), "p1", record.CreateRecordCommand{Note: "note"}, testDoctor)
	var validErr *ValidationError
	require.ErrorAs(t, err, &validErr)
	assert.Equal(t, []string{"namaste_code"}, validErr.Fields)

	_, err = svc.AddRecord(context.Background(), "p1", record.CreateRecordCommand{NamasteCode: "NAM001"}, testDoctor)
	require.ErrorAs(t, err, &validErr)
	assert.Equal(t, []string{"note"}, validErr.Fields)
}

func TestRecordService_AddRecord_NonDoctorForbidden(t *testing.T) {
	repo := &mockRecordRepo{}
	svc := newRecordService(repo, nil)

	_, err := svc.AddRecord(context.Background(), "p1", record.CreateRecordCommand{
		NamasteCode: "NAM001",
		Note:        "note",
	}, testPatient)
	assert.ErrorIs(t, err, rbac.ErrForbidden)
	assert.Empty(t, repo.records)
}

func TestRecordService_AddRecord_PersistFailure(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{appendErr: errWriteFailed}, nil)

	_, err := svc.AddRecord(context.Background(), "p1", record.CreateRecordCommand{
		NamasteCode: "NAM001",
		Note:        "note",
	}, testDoctor)
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestRecordService_ListRecords_Access(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{}, nil)

	_, err := svc.ListRecords(context.Background(), "p1", testDoctor)
	assert.NoError(t, err)

	_, err = svc.ListRecords(context.Background(), "p1", testPatient)
	assert.NoError(t, err)

	_, err = svc.ListRecords(context.Background(), "p1", testOtherPatient)
	assert.ErrorIs(t, err, rbac.ErrForbidden)
}

func TestRecordService_AddThenList_EnrichmentIdentical(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{}, nil)

	saved, err := svc.AddRecord(context.Background(), "p1", record.CreateRecordCommand{
		NamasteCode: "NAM001",
		Note:        "digestive complaint",
	}, testDoctor)
	require.NoError(t, err)

	listed, err := svc.ListRecords(context.Background(), "p1", testPatient)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, *saved, listed[0])
}

func TestRecordService_ListRecords_InsertionOrder(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{}, nil)

	for _, code := range []string{"NAM001", "NAM002", "UNKNOWN"} {
		_, err := svc.AddRecord(context.Background(), "p1", record.CreateRecordCommand{
			NamasteCode: code,
			Note:        "note",
		}, testDoctor)
		require.NoError(t, err)
	}

	listed, err := svc.ListRecords(context.Background(), "p1", testPatient)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "NAM001", listed[0].NamasteCode)
	assert.Equal(t, "NAM002", listed[1].NamasteCode)
	assert.Equal(t, "UNKNOWN", listed[2].NamasteCode)
}

func TestRecordService_AssignedDoctor(t *testing.T) {
	users := []domain.UserAccount{
		{ID: "d1", Username: "dr.sharma", Secret: "x", Role: domain.RoleDoctor, Name: "Dr. Sharma"},
	}
	repo := &mockRecordRepo{records: []record.ClinicalRecord{
		{ID: "r1", PatientID: "p1", DoctorID: "d1", NamasteCode: "NAM001", Note: "first"},
		{ID: "r2", PatientID: "p1", DoctorID: "d9", NamasteCode: "NAM002", Note: "second"},
	}}
	svc := newRecordService(repo, users)

	// The assignment is the doctor on the oldest record.
	doctor, err := svc.AssignedDoctor(context.Background(), "p1", testPatient)
	require.NoError(t, err)
	assert.Equal(t, "d1", doctor.ID)
	assert.Equal(t, "Dr. Sharma", doctor.Name)
}

func TestRecordService_AssignedDoctor_NotFound(t *testing.T) {
	// No records at all.
	svc := newRecordService(&mockRecordRepo{}, nil)
	_, err := svc.AssignedDoctor(context.Background(), "p1", testPatient)
	assert.ErrorIs(t, err, record.ErrNoDoctorAssigned)

	// Record points at a doctor the identity table does not know.
	repo := &mockRecordRepo{records: []record.ClinicalRecord{
		{ID: "r1", PatientID: "p1", DoctorID: "gone", NamasteCode: "NAM001"},
	}}
	svc = newRecordService(repo, nil)
	_, err = svc.AssignedDoctor(context.Background(), "p1", testPatient)
	assert.ErrorIs(t, err, record.ErrNoDoctorAssigned)
}

func TestRecordService_Insurance(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{}, nil)

	ins, err := svc.Insurance(context.Background(), "p1", testPatient)
	require.NoError(t, err)
	assert.Equal(t, "POL-P1", ins.PolicyNumber)
	assert.Equal(t, "HealthCare Co.", ins.Provider)

	_, err = svc.Insurance(context.Background(), "p1", testOtherPatient)
	assert.ErrorIs(t, err, rbac.ErrForbidden)
}
