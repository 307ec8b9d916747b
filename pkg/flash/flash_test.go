package flash

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlashApp() *fiber.App {
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		Set(c, "Password incorrect. Please try again.")
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/read", func(c *fiber.Ctx) error {
		return c.SendString(Get(c))
	})
	return app
}

func TestFlashRoundTrip(t *testing.T) {
	app := newFlashApp()

	setResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
	require.NoError(t, err)
	defer setResp.Body.Close()

	var flashCookie string
	for _, cookie := range setResp.Cookies() {
		if cookie.Name == "flash" {
			flashCookie = cookie.Value
		}
	}
	require.NotEmpty(t, flashCookie)

	readReq := httptest.NewRequest(http.MethodGet, "/read", nil)
	readReq.AddCookie(&http.Cookie{Name: "flash", Value: flashCookie})

	readResp, err := app.Test(readReq)
	require.NoError(t, err)
	defer readResp.Body.Close()

	body, err := io.ReadAll(readResp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Password incorrect. Please try again.", string(body))

	// Reading the notice clears the cookie.
	cleared := false
	for _, cookie := range readResp.Cookies() {
		if cookie.Name == "flash" && cookie.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestFlashAbsent(t *testing.T) {
	app := newFlashApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/read", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, string(body))
}

func TestFlashGarbageCookie(t *testing.T) {
	app := newFlashApp()

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "%%%not-base64%%%"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, string(body))
}

func TestFlashEncoding(t *testing.T) {
	encoded := base64.URLEncoding.EncodeToString([]byte("You must login or register to comment."))
	assert.False(t, strings.ContainsAny(encoded, " ;,"))
}
