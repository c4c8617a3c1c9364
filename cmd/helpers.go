package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/requinsolutions/aidetect/internal/api"
	"github.com/requinsolutions/aidetect/internal/config"
	"github.com/requinsolutions/aidetect/internal/session"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `aidetect init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w\nRun `aidetect init` to reconfigure", err)
	}
	return cfg, nil
}

// newClient builds an API client from the config and an optional session.
func newClient(cfg *config.Config, sess *session.Session) *api.Client {
	token := ""
	if sess != nil {
		token = sess.AccessToken
	}
	return api.New(cfg.APIBase, token, time.Duration(cfg.TimeoutSeconds)*time.Second)
}

// requestError maps API failures onto user-facing messages. A 401 forces a
// logout: the stored session is cleared so the next command prompts a fresh
// login instead of replaying a dead token.
func requestError(err error, store *session.Store) error {
	switch {
	case errors.Is(err, api.ErrSessionExpired):
		if store != nil {
			_ = store.Clear()
		}
		return fmt.Errorf("session expired. Run `aidetect login` to sign in again")
	case errors.Is(err, api.ErrTokensExhausted):
		return fmt.Errorf("no tokens left. Contact your admin to recharge")
	case errors.Is(err, api.ErrServerUnreachable):
		return fmt.Errorf("server not reachable. Please try again")
	}
	return err
}
