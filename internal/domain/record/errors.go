package record

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrNoDoctorAssigned = errors.New("no doctor assigned yet")
)
