// Package util provides logging helpers, data directory lookup, id
// generation and small slice/number helpers shared by the timers.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}
