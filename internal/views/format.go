package views

import "time"

const (
	FullLayout   = "Monday January, 2, 2006 at 3:04PM"
	MediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDateTime renders t in loc. format is "full" or "medium"; anything
// else falls back to medium.
func FormatDateTime(t time.Time, format string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	layout := MediumLayout
	if format == "full" {
		layout = FullLayout
	}
	return t.In(loc).Format(layout)
}
