package reservation

import (
	"strings"
	"time"
)

// Time slots arrive from the booking form in display form ("09h00") and are
// persisted in 24-hour "HH:MM" form. The set of bookable slots lives with the
// timeslot validation tag in pkg/validator.

// NormalizeTime converts a display slot ("09h00") to storage form ("09:00").
func NormalizeTime(slot string) string {
	return strings.Replace(slot, "h", ":", 1)
}

// DisplayTime converts a stored time ("09:00") back to display form ("09h00").
func DisplayTime(t string) string {
	return strings.Replace(t, ":", "h", 1)
}

const dateLayout = "2006-01-02"

// CheckDateFreshness enforces the business rule kept separate from the shape
// schema: the requested date must be today or later, compared at local
// midnight. Today is inclusive.
func CheckDateFreshness(date string, now time.Time) error {
	parsed, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return ErrInvalidDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return ErrPastDate
	}
	return nil
}

var frWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var frMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDateFR renders an ISO date as a long French date
// ("lundi 2 mars 2026"). Returns the input unchanged when it does not parse.
func FormatDateFR(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}

	var b strings.Builder
	b.WriteString(frWeekdays[int(parsed.Weekday())])
	b.WriteByte(' ')
	b.WriteString(parsed.Format("2"))
	b.WriteByte(' ')
	b.WriteString(frMonths[int(parsed.Month())-1])
	b.WriteByte(' ')
	b.WriteString(parsed.Format("2006"))
	return b.String()
}
