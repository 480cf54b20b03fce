package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/seed"
	"devconnect/internal/storage"
)

// Network owns the per-user connection list and the suggested-developer
// directory. Connections persist under a user-scoped key; suggestions are
// regenerated each session, as in the original client.
type Network struct {
	storage     storage.Store
	identity    *Identity
	log         *observability.StoreLogger
	suggestions []models.User
}

// NewNetwork creates the network store with count generated suggestions.
func NewNetwork(store storage.Store, identity *Identity, factory *seed.Factory, count int, logger *slog.Logger) *Network {
	return &Network{
		storage:     store,
		identity:    identity,
		log:         observability.NewStoreLogger("network", logger),
		suggestions: factory.BuildDevelopers(count),
	}
}

// Suggestions returns the suggested-developer directory.
func (n *Network) Suggestions() []models.User {
	return append([]models.User{}, n.suggestions...)
}

// Connections returns the session user's connection IDs.
func (n *Network) Connections(ctx context.Context) ([]string, error) {
	user := n.identity.CurrentUser()
	if user == nil {
		return nil, models.NewUnauthenticatedError("sign in to view connections")
	}
	return n.loadConnections(ctx, user.ID)
}

// IsConnected reports whether the session user is connected to developerID.
func (n *Network) IsConnected(ctx context.Context, developerID string) (bool, error) {
	connections, err := n.Connections(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range connections {
		if id == developerID {
			return true, nil
		}
	}
	return false, nil
}

// ToggleConnection adds or removes a connection and reports the new state.
func (n *Network) ToggleConnection(ctx context.Context, developerID string) (bool, error) {
	user := n.identity.CurrentUser()
	if user == nil {
		return false, models.NewUnauthenticatedError("sign in to connect")
	}

	connections, err := n.loadConnections(ctx, user.ID)
	if err != nil {
		return false, err
	}

	connected := false
	updated := make([]string, 0, len(connections)+1)
	for _, id := range connections {
		if id == developerID {
			continue
		}
		updated = append(updated, id)
	}
	if len(updated) == len(connections) {
		updated = append(updated, developerID)
		connected = true
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return false, err
	}
	if err := n.storage.Put(ctx, KeyConnectionsPrefix+user.ID, data); err != nil {
		n.log.LogError(ctx, "toggle_connection", err)
		return false, err
	}
	n.log.LogOp(ctx, "toggle_connection", map[string]interface{}{
		"developer_id": developerID,
		"connected":    connected,
	})
	return connected, nil
}

func (n *Network) loadConnections(ctx context.Context, userID string) ([]string, error) {
	data, err := n.storage.Get(ctx, KeyConnectionsPrefix+userID)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	var connections []string
	if err := json.Unmarshal(data, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}
