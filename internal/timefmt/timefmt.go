// Package timefmt renders commit times for narrow list columns.
package timefmt

import (
	"fmt"
	"time"
)

// Ago describes how long before reference t happened, in at most a dozen
// columns. A zero t renders as "-".
func Ago(t, reference time.Time) string {
	if t.IsZero() {
		return "-"
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	t = t.In(reference.Location())
	diff := reference.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case isYesterday(t, reference):
		return "yesterday"
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case t.Year() == reference.Year():
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2006")
	}
}

func isYesterday(t, reference time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := reference.AddDate(0, 0, -1).Date()
	return ty == ry && tm == rm && td == rd
}
