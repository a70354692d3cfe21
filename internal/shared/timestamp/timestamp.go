// Package timestamp renders the API's response timestamps.
package timestamp

import "time"

// Layout is ISO 8601 with millisecond precision and a literal Z suffix.
// Every timestamp in a response body uses this form, always in UTC.
const Layout = "2006-01-02T15:04:05.000Z"

// Format renders t in UTC using Layout.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}
