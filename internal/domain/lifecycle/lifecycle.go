// Package lifecycle holds shared constants for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or stop.
const DefaultTimeout = 30 * time.Second
