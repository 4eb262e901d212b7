package availability

import "time"

// Business window for consultations. Slots start on the half hour from
// opening up to, but not including, closing.
const (
	openHour     = 9
	closeHour    = 17
	slotInterval = 30 * time.Minute
)

// Slots returns every bookable start time as "HH:MM", in increasing order.
// The grid is fixed: it does not depend on the requested date and does not
// exclude already-booked times.
func Slots() []string {
	start := time.Date(2000, 1, 1, openHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, closeHour, 0, 0, 0, time.UTC)

	var slots []string
	for t := start; t.Before(end); t = t.Add(slotInterval) {
		slots = append(slots, t.Format("15:04"))
	}
	return slots
}
