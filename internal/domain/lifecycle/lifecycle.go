// Package lifecycle holds shared timeouts for service startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and client connections.
const DefaultTimeout = 10 * time.Second
