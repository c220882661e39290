package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateWindow(t *testing.T) {
	orderDate := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)

	t.Run("same day", func(t *testing.T) {
		w := EvaluateWindow(orderDate, orderDate.Add(1*time.Minute), 3)
		assert.True(t, w.Eligible)
		assert.Equal(t, 0, w.DaysElapsed)
	})

	t.Run("calendar day boundary counts as one day", func(t *testing.T) {
		// 23:59 -> 00:01 is two minutes on the clock but one calendar day
		w := EvaluateWindow(orderDate, time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC), 3)
		assert.True(t, w.Eligible)
		assert.Equal(t, 1, w.DaysElapsed)
	})

	t.Run("last eligible day", func(t *testing.T) {
		w := EvaluateWindow(orderDate, time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC), 3)
		assert.True(t, w.Eligible)
		assert.Equal(t, 3, w.DaysElapsed)
	})

	t.Run("window expired", func(t *testing.T) {
		w := EvaluateWindow(orderDate, time.Date(2026, 3, 14, 0, 1, 0, 0, time.UTC), 3)
		assert.False(t, w.Eligible)
		assert.Equal(t, 4, w.DaysElapsed)
	})

	t.Run("future order date stays eligible", func(t *testing.T) {
		w := EvaluateWindow(orderDate, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), 3)
		assert.True(t, w.Eligible)
		assert.Equal(t, -1, w.DaysElapsed)
	})

	t.Run("expiry keeps the order timestamp", func(t *testing.T) {
		w := EvaluateWindow(orderDate, orderDate, 3)
		assert.Equal(t, time.Date(2026, 3, 13, 23, 59, 0, 0, time.UTC), w.ExpiresAt)
	})
}
