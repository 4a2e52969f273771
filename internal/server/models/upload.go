package models

import "time"

// UploadHistoryEntry is one ledger row per successful upload. Rows are
// append-only, never updated or deleted; monthly usage is computed by
// summation over the creation timestamps.
type UploadHistoryEntry struct {
	ID        int64
	Size      int64
	CreatedAt time.Time
}

// MonthUsage is one bucket of the historical usage series, keyed by a
// "YYYY-MM" month in UTC.
type MonthUsage struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}
