package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/skybi/asset-manager/internal/model"
	"github.com/skybi/asset-manager/internal/observable"
	"github.com/skybi/asset-manager/internal/storage"
)

// ErrMalformedSession is reported when the durably stored user record can not be decoded
var ErrMalformedSession = errors.New("malformed stored session")

// Store owns the session state and mirrors it into a durable storage driver.
// If the driver is nil or unavailable, the store operates in memory only.
// Storage errors never surface to the caller; they are logged and swallowed.
type Store struct {
	driver storage.Driver
	state  *observable.Value[Session]
}

// New creates a new auth store and restores the session from the given driver
func New(ctx context.Context, driver storage.Driver) *Store {
	store := &Store{
		driver: driver,
	}
	session, err := store.restore(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not restore the stored session; starting unauthenticated")
		if errors.Is(err, ErrMalformedSession) {
			store.forget(ctx, storage.KeyToken, storage.KeyUser)
		}
		session = Session{}
	}
	store.state = observable.New(session)
	return store
}

// Login stores the given token and user and marks the session as authenticated.
// The durable write happens before subscribers are notified.
func (store *Store) Login(ctx context.Context, token string, user *model.User) {
	store.persist(ctx, storage.KeyToken, token)
	store.persistUser(ctx, user)
	store.state.Set(newSession(token, user))
}

// Logout removes the stored token and user and marks the session as unauthenticated
func (store *Store) Logout(ctx context.Context) {
	store.forget(ctx, storage.KeyToken, storage.KeyUser)
	store.state.Set(Session{})
}

// Token returns the current token; it is empty if there is none
func (store *Store) Token() string {
	return store.state.Get().Token
}

// Session returns the current session state
func (store *Store) Session() Session {
	return store.state.Get()
}

// UpdateUser replaces the stored user while keeping the token as it is
func (store *Store) UpdateUser(ctx context.Context, user *model.User) {
	store.persistUser(ctx, user)
	store.state.Update(func(current Session) Session {
		current.User = user
		return current
	})
}

// SetFromConfig adopts a token coming from a locally stored configuration rather than a login response.
// The stored user is left untouched. An empty token is ignored.
func (store *Store) SetFromConfig(ctx context.Context, token string) {
	if token == "" {
		return
	}
	store.persist(ctx, storage.KeyToken, token)
	store.state.Update(func(current Session) Session {
		current.Token = token
		current.IsAuthenticated = true
		return current
	})
}

// Subscribe registers fn to receive the session state on every change.
// fn is called immediately with the current state.
func (store *Store) Subscribe(fn func(Session)) (unsubscribe func()) {
	return store.state.Subscribe(fn)
}

func (store *Store) restore(ctx context.Context) (Session, error) {
	if !store.durable() {
		return Session{}, nil
	}
	token, _, err := store.driver.Get(ctx, storage.KeyToken)
	if err != nil {
		return Session{}, err
	}
	rawUser, ok, err := store.driver.Get(ctx, storage.KeyUser)
	if err != nil {
		return Session{}, err
	}

	var user *model.User
	if ok && rawUser != "" && rawUser != "null" {
		user = new(model.User)
		if err := json.Unmarshal([]byte(rawUser), user); err != nil {
			return Session{}, fmt.Errorf("%w: %v", ErrMalformedSession, err)
		}
	}
	return newSession(token, user), nil
}

func (store *Store) durable() bool {
	return store.driver != nil && store.driver.Available()
}

func (store *Store) persist(ctx context.Context, key, value string) {
	if !store.durable() {
		return
	}
	if err := store.driver.Set(ctx, key, value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not persist session state")
	}
}

func (store *Store) persistUser(ctx context.Context, user *model.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		log.Warn().Err(err).Msg("could not encode the session user")
		return
	}
	store.persist(ctx, storage.KeyUser, string(raw))
}

func (store *Store) forget(ctx context.Context, keys ...string) {
	if !store.durable() {
		return
	}
	for _, key := range keys {
		if err := store.driver.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("could not delete session state")
		}
	}
}
