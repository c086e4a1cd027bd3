// File: utils/constants.go
package utils

import "time"

// HealthCheckInterval is how often the store pingers run.
const HealthCheckInterval = 60 * time.Second

// PingTimeout bounds a single health ping.
const PingTimeout = 5 * time.Second
