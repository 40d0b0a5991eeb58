// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop of managed components.
const DefaultTimeout = 15 * time.Second
