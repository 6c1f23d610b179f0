package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ayushbridge/ayushbridge/internal/service"
	"github.com/ayushbridge/ayushbridge/pkg/metrics"
)

type TerminologyHandler struct {
	termSvc   *service.TerminologyService
	collector *metrics.Collector
}

func NewTerminologyHandler(termSvc *service.TerminologyService, collector *metrics.Collector) *TerminologyHandler {
	return &TerminologyHandler{termSvc: termSvc, collector: collector}
}

// Autocomplete serves the dictionary lookup. A blank query returns an empty
// list, never the whole dictionary.
func (h *TerminologyHandler) Autocomplete(c *gin.Context) {
	h.collector.DictionarySearches.Inc()
	respondOK(c, h.termSvc.Search(c.Query("q")))
}
