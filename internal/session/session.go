// Package session keeps the API bearer token and signed-in user in a server-side session.
package session

import (
	"encoding/json"
	"fmt"

	"lightweight-feedback-system/config"
	"lightweight-feedback-system/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Auth is what a signed-in browser session carries.
type Auth struct {
	Token string
	User  entities.User
}

// Store wraps the fiber session store.
type Store struct {
	log   *zap.SugaredLogger
	store *session.Store
}

// New creates a cookie-keyed in-memory session store.
func New(log *zap.SugaredLogger, cfg config.SessionConfig) *Store {
	return &Store{
		log: log.Named("session"),
		store: session.New(session.Config{
			Expiration:     cfg.Expiration,
			KeyLookup:      "cookie:" + cfg.CookieName,
			CookieSecure:   cfg.CookieSecure,
			CookieHTTPOnly: true,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
			KeyGenerator:   uuid.NewString,
		}),
	}
}

// Load returns the session's auth, or nil for anonymous visitors.
func (s *Store) Load(c *fiber.Ctx) (*Auth, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	token, _ := sess.Get(tokenKey).(string)
	raw, _ := sess.Get(userKey).(string)
	if token == "" || raw == "" {
		return nil, nil
	}

	var user entities.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warnw("dropping corrupt session", "error", err)
		_ = sess.Destroy()
		return nil, nil
	}
	return &Auth{Token: token, User: user}, nil
}

// Save stores a fresh login under a new session id.
func (s *Store) Save(c *fiber.Ctx, auth *entities.Session) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("regenerate session: %w", err)
	}

	raw, err := json.Marshal(auth.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	sess.Set(tokenKey, auth.AccessToken)
	sess.Set(userKey, string(raw))
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.log.Infow("session started", "user_id", auth.User.ID, "role", auth.User.Role)
	return nil
}

// Clear destroys the session, logging the user out.
func (s *Store) Clear(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := sess.Destroy(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
