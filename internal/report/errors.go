package report

import "fmt"

// FormatError reports a date string that does not match YYYY-MM-DD.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date %q, want YYYY-MM-DD", e.Input)
}

// ShapeError reports parallel series whose lengths disagree. A missing series
// decodes to a nil slice and is reported the same way.
type ShapeError struct {
	Series string
	Want   int
	Got    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("series %s has %d entries, time axis has %d", e.Series, e.Got, e.Want)
}

// ResolutionError reports a timezone whose calendar could not be loaded.
type ResolutionError struct {
	Zone string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve calendar date in zone %q: %v", e.Zone, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
