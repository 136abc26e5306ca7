package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/professional-agenda/internal/models"
)

// GormSink persists events in the audit_logs table.
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		EventID:        ev.ID.String(),
		ProfessionalID: ev.ProfessionalID,
		Action:         ev.Action,
		Day:            ev.Day,
		Metadata:       metaJSON,
		OccurredAt:     ev.OccurredAt,
	}

	return s.db.WithContext(ctx).Create(&log).Error
}
