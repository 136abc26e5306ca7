package availability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/BruksfildServices01/professional-agenda/internal/audit"
	domain "github.com/BruksfildServices01/professional-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/professional-agenda/internal/telemetry"
)

type DeleteAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAvailability {
	return &DeleteAvailability{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAvailability) Execute(
	ctx context.Context,
	professionalID string,
	day string,
) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "availability.delete",
		attribute.String("professional.id", professionalID),
		attribute.String("day", day),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	if err = uc.repo.Delete(ctx, professionalID, day); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		Action:         audit.ActionAvailabilityDeleted,
		Day:            day,
	})

	return nil
}
