// Package apitest provides an in-process stand-in for the asset manager API server
package apitest

import (
	"bytes"
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/skybi/asset-manager/internal/api/schema"
	"github.com/skybi/asset-manager/internal/model"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Request is a request the server received
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Decode decodes the JSON body of the request into target
func (request *Request) Decode(target any) error {
	return json.Unmarshal(request.Body, target)
}

type account struct {
	password string
	token    string
	user     model.User
}

// Server is a fake asset manager API server.
// It answers login and /auth/me on its own; every other route has to be registered using Handle or Respond.
type Server struct {
	*httptest.Server

	router chi.Router
	writer *schema.Writer

	mtx      sync.Mutex
	requests []*Request
	accounts map[string]*account
}

// New starts a new fake server which is closed when the test finishes
func New(t testing.TB) *Server {
	server := &Server{
		router: chi.NewRouter(),
		writer: &schema.Writer{
			InternalErrorHook: func(err error) {
				t.Errorf("fake API server failed: %v", err)
			},
		},
		accounts: make(map[string]*account),
	}

	server.router.Use(middleware.Recoverer)
	server.router.Use(server.record)
	server.router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		server.writer.WriteError(writer, http.StatusNotFound, "Not found")
	})
	server.router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		server.writer.WriteError(writer, http.StatusMethodNotAllowed, "Method not allowed")
	})
	server.router.Post("/api/auth/login", server.endpointLogin)
	server.router.Get("/api/auth/me", server.endpointMe)

	server.Server = httptest.NewServer(server.router)
	t.Cleanup(server.Close)
	return server
}

// AddAccount registers an account that can log in using username and password and is then handed token
func (server *Server) AddAccount(username, password, token string, user model.User) {
	server.mtx.Lock()
	defer server.mtx.Unlock()
	server.accounts[username] = &account{
		password: password,
		token:    token,
		user:     user,
	}
}

// Handle registers handler for the given method and route pattern (including the /api prefix)
func (server *Server) Handle(method, pattern string, handler http.HandlerFunc) {
	server.router.MethodFunc(method, pattern, handler)
}

// Respond registers a route that always answers with status and the JSON representation of value.
// A nil value sends an empty body.
func (server *Server) Respond(method, pattern string, status int, value any) {
	server.Handle(method, pattern, func(writer http.ResponseWriter, _ *http.Request) {
		if value == nil {
			writer.WriteHeader(status)
			return
		}
		server.writer.WriteJSONCode(writer, status, value)
	})
}

// RespondError registers a route that always answers with status and an error body carrying message
func (server *Server) RespondError(method, pattern string, status int, message string) {
	server.Handle(method, pattern, func(writer http.ResponseWriter, _ *http.Request) {
		server.writer.WriteError(writer, status, message)
	})
}

// Requests returns all requests received so far
func (server *Server) Requests() []*Request {
	server.mtx.Lock()
	defer server.mtx.Unlock()
	requests := make([]*Request, len(server.requests))
	copy(requests, server.requests)
	return requests
}

// LastRequest returns the most recently received request or nil if none was received yet
func (server *Server) LastRequest() *Request {
	server.mtx.Lock()
	defer server.mtx.Unlock()
	if len(server.requests) == 0 {
		return nil
	}
	return server.requests[len(server.requests)-1]
}

func (server *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		request.Body = io.NopCloser(bytes.NewReader(body))

		server.mtx.Lock()
		server.requests = append(server.requests, &Request{
			Method:   request.Method,
			Path:     request.URL.Path,
			RawQuery: request.URL.RawQuery,
			Header:   request.Header.Clone(),
			Body:     body,
		})
		server.mtx.Unlock()

		next.ServeHTTP(writer, request)
	})
}

func (server *Server) endpointLogin(writer http.ResponseWriter, request *http.Request) {
	var body schema.LoginRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		server.writer.WriteError(writer, http.StatusBadRequest, "Invalid request body")
		return
	}

	server.mtx.Lock()
	acc, ok := server.accounts[body.Username]
	server.mtx.Unlock()
	if !ok || acc.password != body.Password {
		server.writer.WriteError(writer, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	server.writer.WriteJSON(writer, &schema.LoginResponse{
		Token:     acc.token,
		ExpiresAt: 1893456000,
		User:      acc.user,
	})
}

func (server *Server) endpointMe(writer http.ResponseWriter, request *http.Request) {
	token := strings.TrimPrefix(request.Header.Get("Authorization"), "Bearer ")

	server.mtx.Lock()
	defer server.mtx.Unlock()
	for _, acc := range server.accounts {
		if token != "" && acc.token == token {
			server.writer.WriteJSON(writer, acc.user)
			return
		}
	}
	server.writer.WriteError(writer, http.StatusUnauthorized, "Unauthorized")
}
