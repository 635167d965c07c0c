package global

import (
	"time"
)

var (
	Version   = "0.0.1"
	BuildTime = "none"
	Verbose   = false
)

const (
	// DefaultAttempts is the total number of fetch attempts, including the
	// first one. 1 means fail fast.
	DefaultAttempts = 3

	// RetryDelay is the fixed wait between fetch attempts.
	RetryDelay = 10 * time.Second

	UpdateHost = "https://api.github.com/repos/wallfetch/wallfetch"
)
