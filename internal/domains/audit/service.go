package audit

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/routeforge/netagent/internal/objects/bo"
)

type (
	IStoreService interface {
		AppendAuditRecord(record bo.AuditRecord) (err error)
		ListAuditRecords() (records []bo.AuditRecord, err error)
	}
)

// Service records every mutation attempt for the external log collector.
// Recording is fire-and-forget: an unsaved record is logged, never fatal.
type Service struct {
	storeService IStoreService
}

func NewService(storeService IStoreService) *Service {
	return &Service{
		storeService: storeService,
	}
}

func (s *Service) Record(component, action, target string, success bool, message string) {
	record := bo.AuditRecord{
		Timestamp: time.Now().UTC(),
		Component: component,
		Action:    action,
		Target:    target,
		Success:   success,
		Message:   message,
	}

	log.Info().
		Str("component", component).
		Str("action", action).
		Str("target", target).
		Bool("success", success).
		Str("message", message).
		Msg("Record: mutation attempt")

	if err := s.storeService.AppendAuditRecord(record); err != nil {
		log.Error().
			Err(err).
			Str("component", component).
			Str("action", action).
			Msg("Record: audit record not saved")
	}
}

func (s *Service) Records() (records []bo.AuditRecord, err error) {
	return s.storeService.ListAuditRecords()
}
