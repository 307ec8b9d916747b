package flash

import (
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "flash"

// Set stores a one-time notice that survives the next redirect.
func Set(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

// Get returns the pending notice, if any, and clears it.
func Get(c *fiber.Ctx) string {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return ""
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})

	message, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return ""
	}

	return string(message)
}
