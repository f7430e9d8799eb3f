package worker

import "time"

// SetClock replaces the pacing clock.
func (w *RefreshWorker) SetClock(now func() time.Time) { w.now = now }
