package service

import (
	"time"
)

type WindowEvaluation struct {
	Eligible    bool      `json:"eligible"`
	DaysElapsed int       `json:"days_elapsed"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// EvaluateWindow computes the return-window state for an order. Both
// timestamps are truncated to their calendar day before differencing, so an
// order placed at 23:59 checked at 00:01 the next day counts as one elapsed
// day, not zero. The expiry keeps the original order timestamp.
//
// Total: an order dated in the future yields a negative DaysElapsed and stays
// eligible.
func EvaluateWindow(orderDate, now time.Time, windowDays int) WindowEvaluation {
	loc := orderDate.Location()

	orderDay := startOfDay(orderDate)
	nowDay := startOfDay(now.In(loc))

	daysElapsed := int(nowDay.Sub(orderDay).Hours() / 24)

	return WindowEvaluation{
		Eligible:    daysElapsed <= windowDays,
		DaysElapsed: daysElapsed,
		ExpiresAt:   orderDate.AddDate(0, 0, windowDays),
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
