package record

import "time"

// ClinicalRecord is a coded note a doctor attached to a patient. Records are
// append-only: once created they are never edited or deleted.
type ClinicalRecord struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	NamasteCode string    `json:"namaste_code"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EnrichedRecord is a clinical record joined against the terminology
// dictionary at read time.
type EnrichedRecord struct {
	ClinicalRecord
	ICD11TM2    string `json:"icd11_tm2"`
	ICD11Biomed string `json:"icd11_biomed"`
}

type CreateRecordCommand struct {
	PatientID   string
	DoctorID    string
	NamasteCode string
	Note        string
}
