package service

import (
	"go.uber.org/zap"

	"github.com/ayushbridge/ayushbridge/internal/domain/terminology"
)

// TerminologyService serves the autocomplete lookup. The dictionary is
// public: autocomplete requires no authentication, matching the original
// intake form behavior.
type TerminologyService struct {
	dict *terminology.Index
	log  *zap.Logger
}

func NewTerminologyService(dict *terminology.Index, log *zap.Logger) *TerminologyService {
	return &TerminologyService{dict: dict, log: log}
}

func (s *TerminologyService) Search(query string) []terminology.Entry {
	return s.dict.Search(query)
}
