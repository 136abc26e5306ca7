package repository

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/BruksfildServices01/professional-agenda/internal/domain/availability"
)

// professionalRecord holds one professional's grids. mu guards days and
// every grid inside it.
type professionalRecord struct {
	mu   sync.Mutex
	days domain.DayGrids
}

// AvailabilityMemoryRepository keeps every grid in process memory. Each
// professional has its own lock, so operations on different professionals
// never wait on each other. Records are never removed once created.
type AvailabilityMemoryRepository struct {
	mu            sync.RWMutex
	professionals map[string]*professionalRecord
}

func NewAvailabilityMemoryRepository() *AvailabilityMemoryRepository {
	return &AvailabilityMemoryRepository{
		professionals: make(map[string]*professionalRecord),
	}
}

func (r *AvailabilityMemoryRepository) record(id string) (*professionalRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.professionals[id]
	return rec, ok
}

func (r *AvailabilityMemoryRepository) recordOrCreate(id string) *professionalRecord {
	if rec, ok := r.record(id); ok {
		return rec
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.professionals[id]; ok {
		return rec
	}
	rec := &professionalRecord{days: domain.DayGrids{}}
	r.professionals[id] = rec
	return rec
}

func validateBatch(days domain.DayGrids) error {
	if len(days) == 0 {
		return domain.ErrEmptyAvailability
	}
	for day, grid := range days {
		if len(grid) == 0 {
			return fmt.Errorf("day %s: %w", day, domain.ErrEmptyAvailability)
		}
	}
	return nil
}

// --------------------------------------------------
// Registration
// --------------------------------------------------

func (r *AvailabilityMemoryRepository) Create(
	ctx context.Context,
	professionalID string,
	days domain.DayGrids,
) error {

	if err := validateBatch(days); err != nil {
		return err
	}

	rec := r.recordOrCreate(professionalID)
	rec.mu.Lock()
	defer rec.mu.Unlock()

	for day := range days {
		if _, exists := rec.days[day]; exists {
			return fmt.Errorf("day %s: %w", day, domain.ErrDayAlreadyExists)
		}
	}

	for day, grid := range days {
		rec.days[day] = grid.Clone()
	}
	return nil
}

// Update overwrites the supplied days wholesale. Days supplied with an
// empty grid are removed.
func (r *AvailabilityMemoryRepository) Update(
	ctx context.Context,
	professionalID string,
	days domain.DayGrids,
) error {

	rec, ok := r.record(professionalID)
	if !ok {
		return domain.ErrProfessionalNotFound
	}

	if len(days) == 0 {
		return domain.ErrEmptyAvailability
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	for day, grid := range days {
		// An empty grid prunes the day instead of storing nothing under it.
		if len(grid) == 0 {
			delete(rec.days, day)
			continue
		}
		rec.days[day] = grid.Clone()
	}
	return nil
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *AvailabilityMemoryRepository) Read(
	ctx context.Context,
	professionalID string,
) (domain.DayGrids, error) {

	rec, ok := r.record(professionalID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if len(rec.days) == 0 {
		return nil, domain.ErrNotFound
	}
	return rec.days.Clone(), nil
}

func (r *AvailabilityMemoryRepository) FilterByInterval(
	ctx context.Context,
	professionalID string,
	interval domain.Interval,
) (domain.DayGrids, error) {

	rec, ok := r.record(professionalID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	out := domain.FilterByInterval(rec.days, interval)
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

// --------------------------------------------------
// Removal
// --------------------------------------------------

func (r *AvailabilityMemoryRepository) Delete(
	ctx context.Context,
	professionalID string,
	day string,
) error {

	rec, ok := r.record(professionalID)
	if !ok {
		return domain.ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if _, exists := rec.days[day]; !exists {
		return fmt.Errorf("day %s: %w", day, domain.ErrNotFound)
	}
	delete(rec.days, day)
	return nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// Book runs the whole check-then-act reservation inside the professional's
// critical section.
func (r *AvailabilityMemoryRepository) Book(
	ctx context.Context,
	professionalID string,
	day string,
	hour string,
) error {

	rec, ok := r.record(professionalID)
	if !ok {
		return domain.ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	grid, exists := rec.days[day]
	if !exists {
		return fmt.Errorf("day %s: %w", day, domain.ErrNotFound)
	}

	return domain.ReserveWindow(grid, hour)
}

// Compile-time check
var _ domain.Repository = (*AvailabilityMemoryRepository)(nil)
