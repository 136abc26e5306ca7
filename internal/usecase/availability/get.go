package availability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	domain "github.com/BruksfildServices01/professional-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/professional-agenda/internal/telemetry"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	professionalID string,
) (days domain.DayGrids, err error) {
	ctx, span := telemetry.StartSpan(ctx, "availability.get",
		attribute.String("professional.id", professionalID),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	return uc.repo.Read(ctx, professionalID)
}
