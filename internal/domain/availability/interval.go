package availability

import "fmt"

// ParseInterval builds a closed day interval from two day keys.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseDay(start)
	if err != nil {
		return Interval{}, fmt.Errorf("start %q: %w", start, ErrInvalidInterval)
	}
	e, err := ParseDay(end)
	if err != nil {
		return Interval{}, fmt.Errorf("end %q: %w", end, ErrInvalidInterval)
	}
	if s.After(e) {
		return Interval{}, fmt.Errorf("start %s after end %s: %w", start, end, ErrInvalidInterval)
	}
	return Interval{Start: s, End: e}, nil
}

func (iv Interval) Contains(day string) bool {
	d, err := ParseDay(day)
	if err != nil {
		return false
	}
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// FilterByInterval returns copies of the grids whose day lies in iv. The
// source mapping is left untouched.
func FilterByInterval(days DayGrids, iv Interval) DayGrids {
	out := DayGrids{}
	for day, grid := range days {
		if iv.Contains(day) {
			out[day] = grid.Clone()
		}
	}
	return out
}
