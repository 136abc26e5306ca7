package availability

import "context"

// Repository owns every professional's day grids. Implementations serialise
// all operations on the same professional.
type Repository interface {
	// -------- Registration --------
	Create(
		ctx context.Context,
		professionalID string,
		days DayGrids,
	) error

	Update(
		ctx context.Context,
		professionalID string,
		days DayGrids,
	) error

	// -------- Queries --------
	Read(
		ctx context.Context,
		professionalID string,
	) (DayGrids, error)

	FilterByInterval(
		ctx context.Context,
		professionalID string,
		interval Interval,
	) (DayGrids, error)

	// -------- Removal --------
	Delete(
		ctx context.Context,
		professionalID string,
		day string,
	) error

	// -------- Booking --------
	Book(
		ctx context.Context,
		professionalID string,
		day string,
		hour string,
	) error
}
