// Package storage provides the string key-value store the accounting
// services persist their records in.
package storage

import "context"

// Keys under which the accounting records live.
const (
	PointsKey      = "addreel:points"
	AnalyticsKey   = "addreel:analytics"
	ImpressionsKey = "addreel:impressions"
)

// KV is a minimal string key-value store. A missing key is not an error:
// Get reports found=false and the caller materializes its own default.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
