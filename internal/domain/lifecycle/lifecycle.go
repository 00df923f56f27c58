// Package lifecycle holds shared constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks such as server listen,
// graceful drain, and database connectivity checks.
const DefaultTimeout = 30 * time.Second
