package interval

import (
	"sync"
	"time"
)

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time from the time package.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Cancel deregisters a recurring callback. Calling it more than once is safe.
type Cancel func()

// Scheduler invokes a callback on a fixed cadence until cancelled.
type Scheduler interface {
	Every(interval time.Duration, callback func()) Cancel
}

// TickerScheduler runs each registration on its own goroutine driven by a
// time.Ticker. Callbacks of one registration never overlap.
type TickerScheduler struct{}

// Every starts a ticker loop calling callback once per interval.
func (TickerScheduler) Every(interval time.Duration, callback func()) Cancel {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				select {
				case <-stopCh:
					return
				default:
				}
				callback()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}
