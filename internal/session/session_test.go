package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"lightweight-feedback-system/config"
	"lightweight-feedback-system/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := New(zap.NewNop().Sugar(), config.SessionConfig{CookieName: "test_session", Expiration: time.Hour})

	app := fiber.New()
	app.Post("/save", func(c *fiber.Ctx) error {
		return store.Save(c, &entities.Session{
			AccessToken: "tok",
			User:        entities.User{ID: 4, Username: "bob_emp", Role: entities.RoleEmployee},
		})
	})
	app.Get("/load", func(c *fiber.Ctx) error {
		auth, err := store.Load(c)
		if err != nil {
			return err
		}
		if auth == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(auth.Token + ":" + auth.User.Username + ":" + strconv.Itoa(auth.User.ID))
	})
	app.Post("/clear", func(c *fiber.Ctx) error {
		return store.Clear(c)
	})
	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == "test_session" {
			return ck
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func body(t *testing.T, app *fiber.App, req *http.Request) string {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestSessionRoundTrip(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, "anonymous", body(t, app, httptest.NewRequest(http.MethodGet, "/load", nil)))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/save", nil))
	require.NoError(t, err)
	ck := sessionCookie(t, resp)
	require.True(t, ck.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/load", nil)
	req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	require.Equal(t, "tok:bob_emp:4", body(t, app, req))

	clearReq := httptest.NewRequest(http.MethodPost, "/clear", nil)
	clearReq.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	_, err = app.Test(clearReq)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/load", nil)
	req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	require.Equal(t, "anonymous", body(t, app, req))
}

func TestUnknownCookieIsAnonymous(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/load", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: "forged"})
	require.Equal(t, "anonymous", body(t, app, req))
}
