// Package lifecycle holds shared constants for application lifecycle management.
package lifecycle

import "time"

// DefaultTimeout is the default timeout for startup and graceful shutdown steps.
const DefaultTimeout = 10 * time.Second
