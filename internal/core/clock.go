package core

import "time"

// Clock supplies wall-clock time to the game. Timers (level, power-up)
// and cosmetic animation read it; tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
