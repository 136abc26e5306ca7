package availability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	domain "github.com/BruksfildServices01/professional-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/professional-agenda/internal/telemetry"
)

type GetAvailabilityInRange struct {
	repo domain.Repository
}

func NewGetAvailabilityInRange(repo domain.Repository) *GetAvailabilityInRange {
	return &GetAvailabilityInRange{repo: repo}
}

// Execute returns the days between startDate and endDate, both inclusive
// and formatted as YYYY-MM-DD.
func (uc *GetAvailabilityInRange) Execute(
	ctx context.Context,
	professionalID string,
	startDate string,
	endDate string,
) (days domain.DayGrids, err error) {
	ctx, span := telemetry.StartSpan(ctx, "availability.get_in_range",
		attribute.String("professional.id", professionalID),
		attribute.String("interval.start", startDate),
		attribute.String("interval.end", endDate),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	interval, err := domain.ParseInterval(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return uc.repo.FilterByInterval(ctx, professionalID, interval)
}
