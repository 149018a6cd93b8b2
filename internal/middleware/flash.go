package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/SscSPs/tax_compliance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

const (
	flashCookieName = "flash"
	flashMaxAge     = 60
	pendingFlashKey = "pendingFlashes"
)

// AddFlash queues a one-time message for the next page the browser loads.
func AddFlash(c *gin.Context, category, message string) {
	pending := pendingFlashes(c)
	pending = append(pending, dto.FlashMessage{Category: category, Message: message})
	c.Set(pendingFlashKey, pending)

	raw, err := json.Marshal(pending)
	if err != nil {
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlashes returns and clears the messages carried by the request.
func PopFlashes(c *gin.Context) []dto.FlashMessage {
	var out []dto.FlashMessage
	if cookie, err := c.Cookie(flashCookieName); err == nil && cookie != "" {
		if raw, err := base64.RawURLEncoding.DecodeString(cookie); err == nil {
			_ = json.Unmarshal(raw, &out)
		}
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     flashCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	out = append(out, pendingFlashes(c)...)
	c.Set(pendingFlashKey, []dto.FlashMessage(nil))
	if out == nil {
		out = []dto.FlashMessage{}
	}
	return out
}

func pendingFlashes(c *gin.Context) []dto.FlashMessage {
	if v, ok := c.Get(pendingFlashKey); ok {
		if msgs, ok := v.([]dto.FlashMessage); ok {
			return msgs
		}
	}
	return nil
}
