package service

import "time"

// Clock supplies wall time to the services.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the real UTC clock.
func SystemClock() Clock { return systemClock{} }
