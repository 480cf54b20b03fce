package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/storage"
)

// Identity owns the current-session user and the persisted user directory.
// The directory maps lowercased email to user record; the session pointer is
// a separate blob so a restart restores the signed-in user.
type Identity struct {
	storage storage.Store
	log     *observability.StoreLogger
	latency time.Duration
	now     func() time.Time
	user    *models.User
}

// SignUpData carries the required fields for account creation.
type SignUpData struct {
	Name     string
	Username string
}

// NewIdentity creates the identity store and restores any persisted session.
// latency is the simulated network delay applied to the account operations;
// zero disables it.
func NewIdentity(ctx context.Context, store storage.Store, logger *slog.Logger, latency time.Duration) (*Identity, error) {
	s := &Identity{
		storage: store,
		log:     observability.NewStoreLogger("identity", logger),
		latency: latency,
		now:     time.Now,
	}
	data, err := store.Get(ctx, KeyCurrentUser)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	s.user = &user
	return s, nil
}

// CurrentUser returns a copy of the session user, or nil when signed out.
func (s *Identity) CurrentUser() *models.User {
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAuthenticated reports whether a session user is present.
func (s *Identity) IsAuthenticated() bool {
	return s.user != nil
}

// SignIn looks up email in the user directory, case-insensitively. The
// password is accepted but not verified; this is a local mock, not real
// authentication.
func (s *Identity) SignIn(ctx context.Context, email, _ string) (*models.User, error) {
	if err := sleepFor(ctx, s.latency); err != nil {
		return nil, err
	}

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := directory[strings.ToLower(email)]
	if !ok {
		return nil, models.NewNotFoundError("user", email)
	}

	if err := s.setSession(ctx, &user); err != nil {
		return nil, err
	}
	s.log.LogOp(ctx, "sign_in", map[string]interface{}{"user_id": user.ID})
	return s.CurrentUser(), nil
}

// SignUp creates a new account and signs it in. An existing directory entry
// for the same email is overwritten, matching the original client.
func (s *Identity) SignUp(ctx context.Context, email, _ string, data SignUpData) (*models.User, error) {
	if err := sleepFor(ctx, s.latency); err != nil {
		return nil, err
	}

	user := models.User{
		ID:       newID("user", s.now()),
		Name:     data.Name,
		Email:    email,
		Username: data.Username,
		Title:    "Developer",
		Skills:   []string{},
	}

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	directory[strings.ToLower(email)] = user
	if err := s.saveDirectory(ctx, directory); err != nil {
		return nil, err
	}

	if err := s.setSession(ctx, &user); err != nil {
		return nil, err
	}
	s.log.LogOp(ctx, "sign_up", map[string]interface{}{"user_id": user.ID})
	return s.CurrentUser(), nil
}

// SignOut clears the session user and its persisted pointer. The directory
// is untouched.
func (s *Identity) SignOut(ctx context.Context) error {
	if err := s.storage.Delete(ctx, KeyCurrentUser); err != nil {
		s.log.LogError(ctx, "sign_out", err)
		return err
	}
	s.user = nil
	s.log.LogOp(ctx, "sign_out", nil)
	return nil
}

// UpdateProfile merges the partial update into the session user and writes
// it back to both the session pointer and the directory entry.
func (s *Identity) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	if s.user == nil {
		return nil, models.NewUnauthenticatedError("no user is signed in")
	}
	if err := sleepFor(ctx, s.latency/2); err != nil {
		return nil, err
	}

	updated := *s.user
	update.Apply(&updated)

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	directory[strings.ToLower(updated.Email)] = updated
	if err := s.saveDirectory(ctx, directory); err != nil {
		return nil, err
	}
	if err := s.setSession(ctx, &updated); err != nil {
		return nil, err
	}
	s.log.LogOp(ctx, "update_profile", map[string]interface{}{"user_id": updated.ID})
	return s.CurrentUser(), nil
}

// UpdateAvatar merges a resolved avatar reference into the session user.
// File validation happens at the caller boundary (internal/images); the
// store only sees the reference.
func (s *Identity) UpdateAvatar(ctx context.Context, avatarURL string) (*models.User, error) {
	if s.user == nil {
		return nil, models.NewUnauthenticatedError("no user is signed in")
	}
	// UpdateProfile sleeps the other half, so avatar updates take the full
	// simulated delay like the original client.
	if err := sleepFor(ctx, s.latency/2); err != nil {
		return nil, err
	}
	return s.UpdateProfile(ctx, models.ProfileUpdate{AvatarURL: &avatarURL})
}

func (s *Identity) setSession(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Put(ctx, KeyCurrentUser, data); err != nil {
		s.log.LogError(ctx, "set_session", err)
		return err
	}
	s.user = user
	return nil
}

func (s *Identity) loadDirectory(ctx context.Context) (map[string]models.User, error) {
	data, err := s.storage.Get(ctx, KeyUsers)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return make(map[string]models.User), nil
	}
	if err != nil {
		return nil, err
	}
	var directory map[string]models.User
	if err := json.Unmarshal(data, &directory); err != nil {
		return nil, err
	}
	if directory == nil {
		directory = make(map[string]models.User)
	}
	return directory, nil
}

func (s *Identity) saveDirectory(ctx context.Context, directory map[string]models.User) error {
	data, err := json.Marshal(directory)
	if err != nil {
		return err
	}
	if err := s.storage.Put(ctx, KeyUsers, data); err != nil {
		s.log.LogError(ctx, "save_directory", err)
		return err
	}
	return nil
}
