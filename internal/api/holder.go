package api

import (
	"github.com/rs/zerolog/log"
	"strings"
	"sync"
)

// Factory creates a client targeting baseURL
type Factory func(baseURL string) *Client

// Holder keeps the client the application currently uses and replaces it whenever the base URL changes.
// Requests already in flight keep using the client they were started with.
type Holder struct {
	factory Factory

	mtx     sync.RWMutex
	current *Client
}

// NewHolder creates a new holder whose initial client targets baseURL
func NewHolder(factory Factory, baseURL string) *Holder {
	return &Holder{
		factory: factory,
		current: factory(baseURL),
	}
}

// Current returns the client currently in use
func (holder *Holder) Current() *Client {
	holder.mtx.RLock()
	defer holder.mtx.RUnlock()
	return holder.current
}

// Reconfigure replaces the current client if baseURL differs from the one it targets.
// It reports whether a new client was created.
func (holder *Holder) Reconfigure(baseURL string) bool {
	holder.mtx.Lock()
	defer holder.mtx.Unlock()
	if holder.current != nil && holder.current.BaseURL() == strings.TrimRight(baseURL, "/") {
		return false
	}
	holder.current = holder.factory(baseURL)
	log.Info().Str("base_url", holder.current.BaseURL()).Msg("reconfigured the API client")
	return true
}
