package handlers_fiber

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lightweight-feedback-system/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestSafeReturn(t *testing.T) {
	tests := map[string]string{
		"/manager":               "/manager",
		"/manager?employee=4":    "/manager?employee=4",
		"/managerial":            "/manager",
		"//evil.example/manager": "/manager",
		"/employee":              "/manager",
	}
	for in, want := range tests {
		require.Equal(t, want, safeReturn(in), in)
	}
}

func TestReturnEmployee(t *testing.T) {
	require.Equal(t, 4, returnEmployee("/manager?employee=4"))
	require.Equal(t, 0, returnEmployee("/manager"))
	require.Equal(t, 0, returnEmployee("/manager?employee=abc"))
}

func TestQueryID(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprint(queryID(c, "employee")))
	})

	for query, want := range map[string]string{
		"":               "0",
		"?employee=12":   "12",
		"?employee=-3":   "0",
		"?employee=nope": "0",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+query, nil))
		require.NoError(t, err)
		require.Equal(t, want, readBody(t, resp), query)
	}
}

func TestParamIDRejectsInvalid(t *testing.T) {
	app := fiber.New()
	app.Post("/feedback/:id", func(c *fiber.Ctx) error {
		_, err := paramID(c)
		if err != nil {
			require.ErrorIs(t, err, entities.ErrInvalidArgument)
			return c.SendStatus(http.StatusBadRequest)
		}
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/feedback/abc", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/feedback/5", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}
