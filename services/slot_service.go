package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samirrathod1410/playarena-gameon-hub/models"
)

// ParseClock converts a wall-clock "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}

	return hour*60 + minute, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateSlots tiles the operating window [open, close) with consecutive
// slots of durationMinutes each. The sequence is ordered, gap-free and
// non-overlapping; a trailing slot that would overrun close is dropped.
// A duration longer than the whole window, or a zero-width window where
// open equals close, yields an empty sequence, which is not an error.
func GenerateSlots(open, close string, durationMinutes int) ([]models.Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", durationMinutes)
	}

	openMin, err := ParseClock(open)
	if err != nil {
		return nil, err
	}
	closeMin, err := ParseClock(close)
	if err != nil {
		return nil, err
	}
	if openMin > closeMin {
		return nil, fmt.Errorf("open time %s must not be after close time %s", open, close)
	}

	var slots []models.Slot
	for t := openMin; t+durationMinutes <= closeMin; t += durationMinutes {
		slots = append(slots, models.Slot{
			Start: formatClock(t),
			End:   formatClock(t + durationMinutes),
		})
	}

	return slots, nil
}
