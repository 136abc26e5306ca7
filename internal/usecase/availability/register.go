package availability

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/BruksfildServices01/professional-agenda/internal/audit"
	domain "github.com/BruksfildServices01/professional-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/professional-agenda/internal/telemetry"
)

type RegisterAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterAvailability {
	return &RegisterAvailability{
		repo:  repo,
		audit: audit,
	}
}

// Execute expands the day ranges into slot grids and stores them as new
// days of the professional's agenda.
func (uc *RegisterAvailability) Execute(
	ctx context.Context,
	professionalID string,
	ranges map[string]string,
) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "availability.register",
		attribute.String("professional.id", professionalID),
		attribute.Int("days", len(ranges)),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	days, err := domain.BuildSlotGrids(ranges)
	if err != nil {
		return err
	}

	if err = uc.repo.Create(ctx, professionalID, days); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		Action:         audit.ActionAvailabilityRegistered,
		Metadata:       map[string]any{"days": dayKeys(days)},
	})

	return nil
}

func dayKeys(days domain.DayGrids) []string {
	keys := make([]string, 0, len(days))
	for day := range days {
		keys = append(keys, day)
	}
	sort.Strings(keys)
	return keys
}
