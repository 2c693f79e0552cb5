// Package lifecycle holds shared timeouts for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup/shutdown steps.
const DefaultTimeout = 10 * time.Second
