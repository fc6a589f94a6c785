// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AvailabilityCachePrefix is the prefix for cached availability responses.
const AvailabilityCachePrefix = "availability:"

// AvailabilityVersionPrefix keys a per-coach cache generation counter; writes
// to rules or exceptions bump it, orphaning every cached day for that coach.
const AvailabilityVersionPrefix = "availability:ver:"

// AvailabilityCacheTTL keeps availability responses fresh enough that the
// past-buffer filter never drifts by more than a minute.
const AvailabilityCacheTTL = time.Minute

// SessionTypeCacheKey holds the serialized session-type catalogue.
const SessionTypeCacheKey = "sessiontypes:catalogue"

// SessionTypeCacheTTL is the time-to-live for the catalogue cache entry.
const SessionTypeCacheTTL = 10 * time.Minute
