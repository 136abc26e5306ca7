package availability

import "time"

const (
	DayLayout  = "2006-01-02"
	SlotLayout = "15:04"

	// SlotStep is the only granularity a grid ever stores.
	SlotStep = 30 * time.Minute

	// SessionLength bounds the grid: the last slot offered for a day starts
	// one session before the stated end.
	SessionLength = time.Hour

	// WindowSlots is how many consecutive slot keys one booking consumes.
	WindowSlots = 4

	// BookingWindow is the half-open span [start, start+BookingWindow)
	// reserved by a booking. It is longer than SessionLength, so a booking
	// on one of the last offered slots runs past the day's stated end;
	// only the slot keys that exist in the grid are reserved.
	BookingWindow = WindowSlots * SlotStep
)

// SlotGrid maps a slot key (HH:mm) to its flag: true is open, false booked.
type SlotGrid map[string]bool

// DayGrids maps a day (YYYY-MM-DD) to its grid.
type DayGrids map[string]SlotGrid

// Interval is a closed range of calendar days.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (g SlotGrid) Clone() SlotGrid {
	out := make(SlotGrid, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out
}

func (d DayGrids) Clone() DayGrids {
	out := make(DayGrids, len(d))
	for day, grid := range d {
		out[day] = grid.Clone()
	}
	return out
}

// ParseDay parses a day key. Days are calendar dates and carry no zone.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// ParseSlot parses a time of day. Single digit hours ("8:00") are accepted.
func ParseSlot(s string) (time.Time, error) {
	return time.Parse(SlotLayout, s)
}

// NormalizeSlot returns the canonical HH:mm form of s.
func NormalizeSlot(s string) (string, error) {
	t, err := ParseSlot(s)
	if err != nil {
		return "", err
	}
	return t.Format(SlotLayout), nil
}
