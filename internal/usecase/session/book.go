package session

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/BruksfildServices01/professional-agenda/internal/audit"
	domain "github.com/BruksfildServices01/professional-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/professional-agenda/internal/httperr"
	"github.com/BruksfildServices01/professional-agenda/internal/telemetry"
)

type BookSession struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookSession(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookSession {
	return &BookSession{
		repo:  repo,
		audit: audit,
	}
}

// Execute reserves the session window starting at hour. A window that
// overlaps an existing booking is rejected and recorded as a conflict.
func (uc *BookSession) Execute(
	ctx context.Context,
	professionalID string,
	day string,
	hour string,
) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "session.book",
		attribute.String("professional.id", professionalID),
		attribute.String("day", day),
		attribute.String("hour", hour),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	err = uc.repo.Book(ctx, professionalID, day, hour)

	switch {
	case err == nil:
		uc.audit.Dispatch(audit.Event{
			ProfessionalID: professionalID,
			Action:         audit.ActionSessionBooked,
			Day:            day,
			Metadata:       map[string]any{"hour": hour},
		})
		return nil

	case httperr.IsBusiness(err, domain.CodeSlotUnavailable):
		uc.audit.Dispatch(audit.Event{
			ProfessionalID: professionalID,
			Action:         audit.ActionSessionConflict,
			Day:            day,
			Metadata:       map[string]any{"hour": hour},
		})
	}

	return err
}
