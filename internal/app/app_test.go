package app

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/skybi/asset-manager/internal/api"
	"github.com/skybi/asset-manager/internal/api/apitest"
	"github.com/skybi/asset-manager/internal/config"
	"github.com/skybi/asset-manager/internal/desktop"
	"github.com/skybi/asset-manager/internal/model"
	"github.com/skybi/asset-manager/internal/notification"
	"github.com/skybi/asset-manager/internal/storage"
	"github.com/skybi/asset-manager/internal/storage/inmem"
	"github.com/skybi/asset-manager/internal/storage/sqlite"
	"github.com/stretchr/testify/suite"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type AppSuite struct {
	suite.Suite
	ctx      context.Context
	server   *apitest.Server
	cfg      *config.Config
	toLogin  int
	instance *App
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) SetupTest() {
	s.ctx = context.Background()
	s.server = apitest.New(s.T())
	s.server.AddAccount("alice", "secret", "t1", model.User{Base: model.Base{ID: 1}, Username: "alice", IsActive: true})
	s.cfg = &config.Config{
		Environment:    "development",
		APIBaseURL:     s.server.URL,
		StateDir:       s.T().TempDir(),
		RequestTimeout: 5 * time.Second,
	}
	s.toLogin = 0
	s.instance = s.newApp()
}

func (s *AppSuite) TearDownTest() {
	if s.instance != nil {
		s.instance.Close()
	}
}

func (s *AppSuite) newApp() *App {
	instance, err := New(s.ctx, s.cfg, Options{
		Navigator: NavigatorFunc(func() {
			s.toLogin++
		}),
		Registerer: prometheus.NewRegistry(),
		UserAgent:  "assetctl/test",
	})
	s.Require().NoError(err)
	return instance
}

func (s *AppSuite) TestUsesSQLiteStorage() {
	s.IsType(&sqlite.Driver{}, s.instance.Storage)
	s.FileExists(filepath.Join(s.cfg.StateDir, stateFileName))
}

func (s *AppSuite) TestFallsBackToMemory() {
	blocked := filepath.Join(s.T().TempDir(), "file")
	s.Require().NoError(os.WriteFile(blocked, nil, 0600))
	s.cfg.StateDir = blocked

	instance := s.newApp()
	defer instance.Close()
	s.IsType(&inmem.Driver{}, instance.Storage)
	s.True(instance.Storage.Available())
}

func (s *AppSuite) TestLogin() {
	user, err := s.instance.Login(s.ctx, "alice", "secret", false)
	s.Require().NoError(err)
	s.Equal("alice", user.Username)

	session := s.instance.Auth.Session()
	s.True(session.IsAuthenticated)
	s.Equal("t1", session.Token)

	token, ok, err := s.instance.Storage.Get(s.ctx, storage.KeyToken)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("t1", token)

	me, err := s.instance.API().Me(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), me.ID)
	s.Equal("Bearer t1", s.server.LastRequest().Header.Get("Authorization"))
	s.Equal("assetctl/test", s.server.LastRequest().Header.Get("User-Agent"))
}

func (s *AppSuite) TestLoginWithEmptyResponse() {
	empty := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte("null"))
	}))
	defer empty.Close()
	s.instance.Close()
	s.cfg.APIBaseURL = empty.URL
	s.instance = s.newApp()

	user, err := s.instance.Login(s.ctx, "alice", "secret", false)
	s.Nil(user)
	var requestErr *api.RequestError
	s.Require().ErrorAs(err, &requestErr)
	s.Equal(api.GenericErrorMessage, requestErr.Message)
	s.False(s.instance.Auth.Session().IsAuthenticated)
}

func (s *AppSuite) TestSessionSurvivesRestart() {
	_, err := s.instance.Login(s.ctx, "alice", "secret", true)
	s.Require().NoError(err)
	s.instance.Close()

	s.instance = s.newApp()
	s.Equal("t1", s.instance.Auth.Token())
	s.Equal("alice", s.instance.Auth.Session().User.Username)
}

func (s *AppSuite) TestUnauthorizedLogsOut() {
	_, err := s.instance.Login(s.ctx, "alice", "secret", false)
	s.Require().NoError(err)

	s.server.RespondError(http.MethodGet, "/api/assets", http.StatusUnauthorized, "Invalid or expired token")
	_, err = s.instance.API().GetAssets(s.ctx)
	s.ErrorIs(err, api.ErrUnauthorized)

	s.False(s.instance.Auth.Session().IsAuthenticated)
	s.Empty(s.instance.Auth.Token())
	s.Equal(1, s.toLogin)

	s.instance.Report(err)
	s.Empty(s.instance.Notifications.Snapshot())
}

func (s *AppSuite) TestReport() {
	s.server.RespondError(http.MethodDelete, "/api/assets/{id}", http.StatusConflict, "Asset is still assigned")
	_, err := s.instance.API().DeleteAsset(s.ctx, 3)
	s.Require().Error(err)

	s.instance.Report(err)
	s.instance.Report(nil)
	s.instance.Report(errors.New("connection refused"))

	snapshot := s.instance.Notifications.Snapshot()
	s.Require().Len(snapshot, 2)
	s.Equal("Asset is still assigned", snapshot[0].Message)
	s.Equal(notification.SeverityDanger, snapshot[0].Severity)
	s.Equal("connection refused", snapshot[1].Message)
}

func (s *AppSuite) TestDesktopBootstrap() {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	host, err := desktop.NewFileHost(path)
	s.Require().NoError(err)
	s.Require().NoError(host.SaveConfig(s.ctx, s.server.URL, "t1"))

	s.cfg.Desktop = true
	s.cfg.APIBaseURL = ""
	instance, err := New(s.ctx, s.cfg, Options{Host: host})
	s.Require().NoError(err)
	defer instance.Close()

	s.Equal(s.server.URL, instance.API().BaseURL())
	s.Equal("t1", instance.Auth.Token())
	s.True(instance.Bootstrap.Config().Configured)

	me, err := instance.API().Me(s.ctx)
	s.Require().NoError(err)
	s.Equal("alice", me.Username)
}
