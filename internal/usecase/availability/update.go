package availability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/BruksfildServices01/professional-agenda/internal/audit"
	domain "github.com/BruksfildServices01/professional-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/professional-agenda/internal/telemetry"
)

type UpdateAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAvailability {
	return &UpdateAvailability{
		repo:  repo,
		audit: audit,
	}
}

// Execute rebuilds the supplied days from scratch. Bookings already made
// on those days are discarded and a range too short for one session removes
// the day. Other days are left alone.
func (uc *UpdateAvailability) Execute(
	ctx context.Context,
	professionalID string,
	ranges map[string]string,
) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "availability.update",
		attribute.String("professional.id", professionalID),
		attribute.Int("days", len(ranges)),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	days, err := domain.BuildSlotGrids(ranges)
	if err != nil {
		return err
	}

	if err = uc.repo.Update(ctx, professionalID, days); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		Action:         audit.ActionAvailabilityUpdated,
		Metadata:       map[string]any{"days": dayKeys(days)},
	})

	return nil
}
