// Package lifecycle holds shared timing constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds individual OnStart/OnStop hooks such as database pings and publisher shutdown.
const DefaultTimeout = 10 * time.Second
