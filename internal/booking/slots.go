// Package booking implements the appointment-booking engine: the weekday
// slot schedule, the calendar month view and the in-flight booking draft.
// Everything in this package is pure; persistence of drafts and appointments
// lives in the repository layer.
package booking

import (
	"fmt"
	"time"
)

// Opening hours, expressed as minutes since midnight. The morning block is
// shared by every weekday; the afternoon block only applies Monday-Saturday.
// End bounds are exclusive: the last morning slot is 11:40, not 12:00.
const (
	slotInterval   = 40
	morningStart   = 9 * 60           // 09:00
	morningEnd     = 12 * 60          // 12:00 (exclusive)
	afternoonStart = 13*60 + 30       // 13:30
	afternoonEnd   = 19 * 60          // 19:00 (exclusive)
)

// AvailableSlots returns the bookable time-of-day strings for a weekday in
// ascending order. Sundays offer the morning block only (09:00..11:40);
// every other day adds the afternoon block (13:30..18:50).
func AvailableSlots(weekday time.Weekday) []string {
	slots := make([]string, 0, 14)
	for m := morningStart; m < morningEnd; m += slotInterval {
		slots = append(slots, formatMinutes(m))
	}
	if weekday == time.Sunday {
		return slots
	}
	for m := afternoonStart; m < afternoonEnd; m += slotInterval {
		slots = append(slots, formatMinutes(m))
	}
	return slots
}

// SlotAvailable reports whether t is one of the generated slots for weekday.
func SlotAvailable(weekday time.Weekday, t string) bool {
	for _, s := range AvailableSlots(weekday) {
		if s == t {
			return true
		}
	}
	return false
}

// formatMinutes converts minutes-since-midnight into a zero-padded "HH:MM".
func formatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
