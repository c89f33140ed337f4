// Package kv is the durable key-value layer behind the catalog and session
// stores. Values are opaque bytes; callers own the encoding.
package kv

import (
	"context"
)

// Fixed storage keys.
const (
	KeyUser     = "kh_user"
	KeyTheme    = "kh_theme"
	KeyProducts = "kh_products"
	KeySales    = "kh_sales"
)

// Store is the persistence contract. Get reports found=false for a missing key
// rather than an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
