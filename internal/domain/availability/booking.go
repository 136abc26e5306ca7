package availability

import "fmt"

// ReserveWindow books the window starting at hour inside grid. Either every
// slot of the window flips from open to booked, or the grid is left as it
// was. Callers must hold the lock guarding grid.
func ReserveWindow(grid SlotGrid, hour string) error {
	start, err := ParseSlot(hour)
	if err != nil {
		return fmt.Errorf("hour %q: %w", hour, ErrSlotNotOffered)
	}

	key := start.Format(SlotLayout)
	if _, ok := grid[key]; !ok {
		return fmt.Errorf("hour %s: %w", key, ErrSlotNotOffered)
	}

	end := start.Add(BookingWindow)
	window := make([]string, 0, WindowSlots)

	for slot, open := range grid {
		t, err := ParseSlot(slot)
		if err != nil || t.Before(start) || !t.Before(end) {
			continue
		}
		if !open {
			return fmt.Errorf("slot %s: %w", slot, ErrSlotUnavailable)
		}
		window = append(window, slot)
	}

	for _, slot := range window {
		grid[slot] = false
	}

	return nil
}
