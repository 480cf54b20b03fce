// Package store implements the client-local domain stores: identity (session
// user and user directory), content (posts and comments), messages, and the
// connection network. Each store owns its persisted blobs exclusively and
// rewrites them in full on every mutation.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Persisted blob keys. Each key is written by exactly one store.
const (
	KeyCurrentUser       = "devconnect_current_user"
	KeyUsers             = "devconnect_users"
	KeyPosts             = "devconnect_posts"
	KeyMessages          = "devconnect_messages"
	KeyConnectionsPrefix = "devconnect_connections_"
)

// newID builds a creation-time-derived opaque ID. The uuid fragment keeps
// IDs unique when two entities are created within the same millisecond.
func newID(kind string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", kind, now.UnixMilli(), uuid.NewString()[:8])
}

// sleepFor waits out the simulated network latency, honoring context
// cancellation so a dying process does not hang on a cosmetic delay.
func sleepFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
