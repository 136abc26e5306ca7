package availability

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var rangeSeparator = regexp.MustCompile(`\s*-\s*`)

// BuildSlotGrids expands each day's "HH:mm-HH:mm" range into its grid of
// open 30-minute slots. The first malformed entry aborts the whole batch.
//
// A range too short to hold one session yields an empty grid; rejecting it
// is up to the caller.
func BuildSlotGrids(ranges map[string]string) (DayGrids, error) {
	out := make(DayGrids, len(ranges))

	for day, raw := range ranges {
		if _, err := ParseDay(day); err != nil {
			return nil, fmt.Errorf("day %q: %w", day, ErrMalformedRange)
		}

		start, end, err := parseRange(raw)
		if err != nil {
			return nil, fmt.Errorf("day %q range %q: %w", day, raw, err)
		}

		out[day] = expand(start, end)
	}

	return out, nil
}

func parseRange(raw string) (time.Time, time.Time, error) {
	parts := rangeSeparator.Split(strings.TrimSpace(raw), -1)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, ErrMalformedRange
	}

	start, err := ParseSlot(parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, ErrMalformedRange
	}
	end, err := ParseSlot(parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, ErrMalformedRange
	}

	if start.Minute()%int(SlotStep/time.Minute) != 0 {
		return time.Time{}, time.Time{}, ErrMalformedRange
	}

	return start, end, nil
}

func expand(start, end time.Time) SlotGrid {
	grid := SlotGrid{}
	lastStart := end.Add(-SessionLength)

	for cur := start; !cur.After(lastStart); cur = cur.Add(SlotStep) {
		grid[cur.Format(SlotLayout)] = true
	}

	return grid
}
