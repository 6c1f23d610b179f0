package v1

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ayushbridge/ayushbridge/internal/service"
	"github.com/ayushbridge/ayushbridge/pkg/metrics"
)

type AuthHandler struct {
	authSvc   *service.AuthService
	userSvc   *service.UserService
	collector *metrics.Collector
}

func NewAuthHandler(authSvc *service.AuthService, userSvc *service.UserService, collector *metrics.Collector) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, userSvc: userSvc, collector: collector}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.collector.AuditEntriesTotal.Inc()
			h.collector.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		}
		respondServiceError(c, err)
		return
	}

	h.collector.AuditEntriesTotal.Inc()
	h.collector.LoginAttemptsTotal.WithLabelValues("success").Inc()
	respondOK(c, result)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	profile, err := h.userSvc.Profile(c.Request.Context(), sessionIdentity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, profile)
}
