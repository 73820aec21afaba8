package auth

import (
	"context"
	"errors"
	"github.com/skybi/asset-manager/internal/model"
	"github.com/skybi/asset-manager/internal/storage"
	"github.com/skybi/asset-manager/internal/storage/inmem"
	"github.com/stretchr/testify/suite"
	"testing"
	"time"
)

// brokenDriver simulates an environment whose durable storage fails on every access
type brokenDriver struct{}

var errBroken = errors.New("disk on fire")

func (brokenDriver) Initialize(context.Context) error { return errBroken }
func (brokenDriver) Available() bool                  { return true }
func (brokenDriver) Get(context.Context, string) (string, bool, error) {
	return "", false, errBroken
}
func (brokenDriver) Set(context.Context, string, string) error { return errBroken }
func (brokenDriver) Delete(context.Context, string) error      { return errBroken }
func (brokenDriver) Close()                                    {}

type StoreSuite struct {
	suite.Suite
	ctx    context.Context
	driver *inmem.Driver
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.driver = inmem.New()
	s.Require().NoError(s.driver.Initialize(s.ctx))
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) stored(key string) (string, bool) {
	value, ok, err := s.driver.Get(s.ctx, key)
	s.Require().NoError(err)
	return value, ok
}

func (s *StoreSuite) TestInitialState() {
	s.Run("empty storage starts unauthenticated", func() {
		store := New(s.ctx, s.driver)
		s.Equal(Session{}, store.Session())
		s.Empty(store.Token())
	})

	s.Run("restores token and user", func() {
		s.Require().NoError(s.driver.Set(s.ctx, storage.KeyToken, "abc"))
		s.Require().NoError(s.driver.Set(s.ctx, storage.KeyUser, `{"ID":3,"Username":"bob"}`))

		store := New(s.ctx, s.driver)
		session := store.Session()
		s.True(session.IsAuthenticated)
		s.Equal("abc", session.Token)
		s.Require().NotNil(session.User)
		s.Equal("bob", session.User.Username)
	})

	s.Run("malformed user resets to unauthenticated", func() {
		s.Require().NoError(s.driver.Set(s.ctx, storage.KeyToken, "abc"))
		s.Require().NoError(s.driver.Set(s.ctx, storage.KeyUser, `{not json`))

		store := New(s.ctx, s.driver)
		s.Equal(Session{}, store.Session())
		_, ok := s.stored(storage.KeyUser)
		s.False(ok)
		_, ok = s.stored(storage.KeyToken)
		s.False(ok)
	})
}

func (s *StoreSuite) TestLoginLogoutRoundTrip() {
	store := New(s.ctx, s.driver)
	user := &model.User{Username: "bob"}
	user.ID = 42

	store.Login(s.ctx, "t0k3n", user)

	token, ok := s.stored(storage.KeyToken)
	s.True(ok)
	s.Equal("t0k3n", token)
	rawUser, ok := s.stored(storage.KeyUser)
	s.True(ok)
	s.JSONEq(`{"ID":42,"CreatedAt":"0001-01-01T00:00:00Z","UpdatedAt":"0001-01-01T00:00:00Z","DeletedAt":null,"Username":"bob","Email":"","IsActive":false}`, rawUser)
	s.Equal(Session{Token: "t0k3n", User: user, IsAuthenticated: true}, store.Session())

	store.Logout(s.ctx)
	_, ok = s.stored(storage.KeyToken)
	s.False(ok)
	_, ok = s.stored(storage.KeyUser)
	s.False(ok)
	s.Equal(Session{}, store.Session())
}

func (s *StoreSuite) TestLoginPersistsBeforePublishing() {
	store := New(s.ctx, s.driver)

	var persisted []string
	defer store.Subscribe(func(session Session) {
		if !session.IsAuthenticated {
			return
		}
		token, _ := s.stored(storage.KeyToken)
		persisted = append(persisted, token)
	})()

	store.Login(s.ctx, "first", &model.User{})
	store.Login(s.ctx, "second", &model.User{})
	s.Equal([]string{"first", "second"}, persisted)
}

func (s *StoreSuite) TestLoginWithoutToken() {
	store := New(s.ctx, s.driver)
	store.Login(s.ctx, "", &model.User{Username: "bob"})

	session := store.Session()
	s.False(session.IsAuthenticated)
	s.Empty(session.Token)
}

func (s *StoreSuite) TestLogoutFromSubscriber() {
	store := New(s.ctx, s.driver)

	var seen []bool
	defer store.Subscribe(func(session Session) {
		seen = append(seen, session.IsAuthenticated)
		if session.IsAuthenticated {
			store.Logout(s.ctx)
		}
	})()

	done := make(chan struct{})
	go func() {
		defer close(done)
		store.SetFromConfig(s.ctx, "tok")
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("SetFromConfig did not return")
	}

	s.Equal([]bool{false, true, false}, seen)
	s.Equal(Session{}, store.Session())
	_, ok := s.stored(storage.KeyToken)
	s.False(ok)
}

func (s *StoreSuite) TestUpdateUser() {
	store := New(s.ctx, s.driver)
	store.Login(s.ctx, "abc", &model.User{Username: "old"})

	store.UpdateUser(s.ctx, &model.User{Username: "new"})

	session := store.Session()
	s.Equal("abc", session.Token)
	s.True(session.IsAuthenticated)
	s.Equal("new", session.User.Username)
	rawUser, _ := s.stored(storage.KeyUser)
	s.Contains(rawUser, `"Username":"new"`)
}

func (s *StoreSuite) TestSetFromConfig() {
	s.Run("adopts the token and keeps the user", func() {
		s.Require().NoError(s.driver.Set(s.ctx, storage.KeyUser, `{"Username":"carol"}`))
		store := New(s.ctx, s.driver)
		s.False(store.Session().IsAuthenticated)

		store.SetFromConfig(s.ctx, "from-config")

		session := store.Session()
		s.True(session.IsAuthenticated)
		s.Equal("from-config", session.Token)
		s.Equal("carol", session.User.Username)
		token, _ := s.stored(storage.KeyToken)
		s.Equal("from-config", token)
	})

	s.Run("ignores an empty token", func() {
		store := New(s.ctx, s.driver)
		store.Logout(s.ctx)

		calls := 0
		defer store.Subscribe(func(Session) { calls++ })()
		store.SetFromConfig(s.ctx, "")
		s.Equal(1, calls)
		s.False(store.Session().IsAuthenticated)
	})
}

func (s *StoreSuite) TestWithoutDurableStorage() {
	s.Run("nil driver operates in memory", func() {
		store := New(s.ctx, nil)
		store.Login(s.ctx, "abc", &model.User{})
		s.Equal("abc", store.Token())
		store.Logout(s.ctx)
		s.Empty(store.Token())
	})

	s.Run("failing driver degrades silently", func() {
		store := New(s.ctx, brokenDriver{})
		s.Equal(Session{}, store.Session())

		store.Login(s.ctx, "abc", &model.User{})
		s.Equal("abc", store.Token())
		store.UpdateUser(s.ctx, &model.User{Username: "x"})
		store.Logout(s.ctx)
		s.False(store.Session().IsAuthenticated)
	})

	s.Run("uninitialized driver is treated as unavailable", func() {
		store := New(s.ctx, inmem.New())
		store.Login(s.ctx, "abc", nil)
		s.True(store.Session().IsAuthenticated)
	})
}
