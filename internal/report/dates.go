package report

import (
	"regexp"
	"time"
)

const civilDateLayout = "2006-01-02"

var civilDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Weekend holds the next Saturday/Sunday pair as YYYY-MM-DD strings.
type Weekend struct {
	Saturday string
	Sunday   string
}

// ParseCivilDate parses a YYYY-MM-DD string as a calendar date with no
// time-of-day or zone attached. Anything else fails with *FormatError.
func ParseCivilDate(s string) (time.Time, error) {
	if !civilDatePattern.MatchString(s) {
		return time.Time{}, &FormatError{Input: s}
	}
	d, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return time.Time{}, &FormatError{Input: s}
	}
	return d, nil
}

// NextWeekend returns the Saturday and Sunday on or after date. A reference
// date that is itself Saturday counts as that weekend; a Sunday already rolls
// over to the next one.
func NextWeekend(date string) (Weekend, error) {
	d, err := ParseCivilDate(date)
	if err != nil {
		return Weekend{}, err
	}
	daysUntilSaturday := (int(time.Saturday) - int(d.Weekday()) + 7) % 7
	sat := d.AddDate(0, 0, daysUntilSaturday)
	return Weekend{
		Saturday: sat.Format(civilDateLayout),
		Sunday:   sat.AddDate(0, 0, 1).Format(civilDateLayout),
	}, nil
}

// TodayInZone resolves the calendar date at the given instant in the named
// civil timezone. An unknown zone fails with *ResolutionError; that is a
// deployment fault, not something worth retrying.
func TodayInZone(instant time.Time, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", &ResolutionError{Zone: zone, Err: err}
	}
	return instant.In(loc).Format(civilDateLayout), nil
}
