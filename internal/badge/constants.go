package badge

import "time"

// Catalog cache configuration
const (
	// CatalogCacheSize bounds the cache; the catalog is stored under a
	// single key, so one entry is enough
	CatalogCacheSize = 1

	// CatalogCacheTTL is how long a cached catalog is served before the
	// store is consulted again
	CatalogCacheTTL = 5 * time.Minute
)

// Error messages
const (
	ErrMsgPatientIDRequired    = "patient ID is required"
	ErrMsgGetCatalogFailed     = "failed to get active badges: %w"
	ErrMsgGetEarnedFailed      = "failed to get earned badges: %w"
	ErrMsgGetContextFailed     = "failed to get metric context: %w"
	ErrMsgRecordUnlockFailed   = "failed to record badge unlock: %w"
)

// Log messages
const (
	LogMsgCatalogLoaded    = "Badge catalog loaded"
	LogMsgCatalogCacheHit  = "Badge catalog served from cache"
	LogMsgEligibleComputed = "Eligible badges computed"
	LogMsgUnlockRecorded   = "Badge unlock recorded"
	LogMsgUnlockEventError = "Failed to publish badge unlocked event"
)
