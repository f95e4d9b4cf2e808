package client

import "time"

// DefaultRetries is the total attempt budget used when no policy is
// installed explicitly.
const DefaultRetries = 3

// Action tells the request loop what to do after a failed attempt.
type Action struct {
	Retry bool
	Delay time.Duration
}

// Fail stops retrying and propagates the error to the caller.
func Fail() Action {
	return Action{}
}

// Retry schedules another attempt after the given delay.
func Retry(delay time.Duration) Action {
	return Action{Retry: true, Delay: delay}
}

// Policy decides, given the zero-based attempt number and the error it
// produced, whether another identical request is issued. A policy never
// sees a successful attempt.
type Policy func(attempt int, err error) Action

// Backoff returns the standard policy: up to retries attempts in total,
// waiting 2^attempt seconds after each failure (1s, 2s, 4s, ...).
// Unauthorized responses fail immediately no matter how many attempts
// remain.
func Backoff(retries int) Policy {
	return func(attempt int, err error) Action {
		if IsUnauthorized(err) {
			return Fail()
		}
		if attempt >= retries-1 {
			return Fail()
		}
		return Retry(time.Duration(1<<uint(attempt)) * time.Second)
	}
}
