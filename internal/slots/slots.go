package slots

import (
	"fmt"
	"strconv"
	"strings"

	"rezervace/internal/entities"
)

// Slot is one bookable time unit. The ID is derived from the hour and
// minute without padding ("18-30"), the display time is zero-padded.
type Slot struct {
	ID   string `json:"id"`
	Time string `json:"time"`
}

// Generate produces one slot every interval minutes starting at start.
// The end boundary is included only when it lands exactly on a step.
// Start, end and interval are minutes of day.
func Generate(start, end, interval int) []Slot {
	if interval <= 0 || end < start {
		return nil
	}

	slots := make([]Slot, 0, (end-start)/interval+1)
	for m := start; m <= end; m += interval {
		slots = append(slots, Slot{
			ID:   fmt.Sprintf("%d-%d", m/60, m%60),
			Time: m2t(m),
		})
	}
	return slots
}

// Availability returns the seats remaining in a slot, never negative and
// never above capacity. Legacy bookings without a party size count as one.
func Availability(slotID string, capacity int, bookings map[string][]entities.Booking) int {
	occupied := 0
	for _, b := range bookings[slotID] {
		people := b.People
		if people <= 0 {
			people = 1
		}
		occupied += people
	}

	if occupied >= capacity {
		return 0
	}
	return capacity - occupied
}

// IsFull reports whether no seats remain in the slot.
func IsFull(slotID string, capacity int, bookings map[string][]entities.Booking) bool {
	return Availability(slotID, capacity, bookings) == 0
}

// ParseClock converts "HH:MM" into minutes of day.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	return h*60 + m, nil
}

func m2t(m int) string {
	hours := m / 60
	minutes := m % 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
