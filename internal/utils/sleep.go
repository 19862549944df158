package utils

import (
	"sync"
	"time"
)

var (
	sleepFunc func(time.Duration) = time.Sleep
	mu        sync.Mutex
)

// Sleep calls the current sleep function.
func Sleep(d time.Duration) {
	mu.Lock()
	f := sleepFunc
	mu.Unlock()
	f(d)
}

// SetSleepFunc overrides the sleep function, tests use it to skip real
// retry backoff delays.
func SetSleepFunc(f func(time.Duration)) {
	mu.Lock()
	sleepFunc = f
	mu.Unlock()
}

// ResetSleepFunc restores the default time.Sleep.
func ResetSleepFunc() {
	SetSleepFunc(time.Sleep)
}
