package config

import "time"

type Session struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func NewSession() (*Session, error) {
	ttl, err := lookupDuration("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	sweep, err := lookupDuration("SESSION_SWEEP_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}
	return &Session{TTL: ttl, SweepInterval: sweep}, nil
}
