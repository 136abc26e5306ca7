package audit

import (
	"context"

	"go.uber.org/zap"
)

// ZapSink writes every event to the service log.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log.Named("audit")}
}

func (s *ZapSink) Write(_ context.Context, ev Event) error {
	s.log.Info(ev.Action,
		zap.String("event_id", ev.ID.String()),
		zap.String("professional_id", ev.ProfessionalID),
		zap.String("day", ev.Day),
		zap.Any("metadata", ev.Metadata),
		zap.Time("occurred_at", ev.OccurredAt),
	)
	return nil
}
