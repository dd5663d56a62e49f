// Package weeks handles delivery-week arithmetic. A week is identified by
// the date of its Monday formatted as YYYY-MM-DD.
package weeks

import (
	"time"

	"github.com/jinzhu/now"
)

const Layout = "2006-01-02"

func config() *now.Config {
	return &now.Config{WeekStartDay: time.Monday}
}

// Start returns midnight on the Monday of the week containing t.
func Start(t time.Time) time.Time {
	return config().With(t).BeginningOfWeek()
}

// Day returns midnight at the start of t's day.
func Day(t time.Time) time.Time {
	return config().With(t).BeginningOfDay()
}

// Of returns the week key for t.
func Of(t time.Time) string {
	return Start(t).Format(Layout)
}

// Parse reads a YYYY-MM-DD date and returns the key of its week.
func Parse(s string) (string, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return "", err
	}
	return Of(t), nil
}

// Upcoming lists the next n week keys, starting with the week after t.
func Upcoming(t time.Time, n int) []string {
	start := Start(t)
	keys := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		keys = append(keys, start.AddDate(0, 0, 7*i).Format(Layout))
	}
	return keys
}

// NextWeek is the key used by "add new week": the week containing t + 7 days.
func NextWeek(t time.Time) string {
	return Of(t.AddDate(0, 0, 7))
}
