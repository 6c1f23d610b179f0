package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ayushbridge/ayushbridge/internal/domain/record"
	"github.com/ayushbridge/ayushbridge/internal/service"
	"github.com/ayushbridge/ayushbridge/pkg/metrics"
)

type RecordHandler struct {
	recordSvc *service.RecordService
	userSvc   *service.UserService
	collector *metrics.Collector
}

func NewRecordHandler(recordSvc *service.RecordService, userSvc *service.UserService, collector *metrics.Collector) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc, userSvc: userSvc, collector: collector}
}

func (h *RecordHandler) ListPatients(c *gin.Context) {
	patients, err := h.userSvc.ListPatients(c.Request.Context(), sessionIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, patients)
}

func (h *RecordHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.userSvc.ListDoctors(c.Request.Context(), sessionIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, doctors)
}

func (h *RecordHandler) ListRecords(c *gin.Context) {
	patientID := c.Param("id")

	records, err := h.recordSvc.ListRecords(c.Request.Context(), patientID, sessionIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, records)
}

type addRecordRequest struct {
	NamasteCode string `json:"namaste_code"`
	Note        string `json:"note"`
}

func (h *RecordHandler) AddRecord(c *gin.Context) {
	patientID := c.Param("id")

	var req addRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd := record.CreateRecordCommand{
		PatientID:   patientID,
		NamasteCode: req.NamasteCode,
		Note:        req.Note,
	}

	saved, err := h.recordSvc.AddRecord(c.Request.Context(), patientID, cmd, sessionIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.RecordsCreatedTotal.Inc()
	respondCreated(c, saved)
}

func (h *RecordHandler) AssignedDoctor(c *gin.Context) {
	patientID := c.Param("id")

	doctor, err := h.recordSvc.AssignedDoctor(c.Request.Context(), patientID, sessionIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, doctor)
}

func (h *RecordHandler) Insurance(c *gin.Context) {
	patientID := c.Param("id")

	insurance, err := h.recordSvc.Insurance(c.Request.Context(), patientID, sessionIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, insurance)
}
