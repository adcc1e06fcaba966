package format

import "time"

// Date renders t as "14 October 2026".
func Date(t time.Time) string {
	return t.Format("2 January 2006")
}

// DateTime renders t as "14 Oct 2026, 09:05" in t's location.
func DateTime(t time.Time) string {
	return t.Format("2 Jan 2006, 15:04")
}
