package v1

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ayushbridge/ayushbridge/internal/rbac"
	"github.com/ayushbridge/ayushbridge/internal/service"
)

type AdminHandler struct {
	auditSvc *service.AuditService
}

func NewAdminHandler(auditSvc *service.AuditService) *AdminHandler {
	return &AdminHandler{auditSvc: auditSvc}
}

// LoginTransactions returns the full audit log. Admins only.
func (h *AdminHandler) LoginTransactions(c *gin.Context) {
	if err := rbac.Authorize(sessionIdentity(c), rbac.ResourceAuditLog, ""); err != nil {
		respondServiceError(c, err)
		return
	}

	entries, err := h.auditSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, entries)
}

// LoginTransactionsCSV streams the audit log as a CSV download. Admins only.
func (h *AdminHandler) LoginTransactionsCSV(c *gin.Context) {
	if err := rbac.Authorize(sessionIdentity(c), rbac.ResourceAuditLog, ""); err != nil {
		respondServiceError(c, err)
		return
	}

	entries, err := h.auditSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=login-transactions.csv`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "username", "success", "ip_address", "timestamp"})
	for _, e := range entries {
		_ = w.Write([]string{
			e.ID,
			e.Username,
			strconv.FormatBool(e.Success),
			e.IPAddress,
			e.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		})
	}
	w.Flush()
}
