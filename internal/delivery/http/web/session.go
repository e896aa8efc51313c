package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie keys the visitor's contact flow.
const SessionCookie = "contact_session"

// contactSession returns the visitor's session id, issuing a new random one
// when the cookie is missing or malformed.
func (h *Handler) contactSession(c *gin.Context) string {
	if id, err := c.Cookie(SessionCookie); err == nil && validSessionID(id) {
		return id
	}
	id := newSessionID()
	c.SetSameSite(http.SameSiteLaxMode)
	// Session cookie: no Max-Age, idle flows expire server side.
	c.SetCookie(SessionCookie, id, 0, "/", "", h.secure, true)
	return id
}

func newSessionID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func validSessionID(id string) bool {
	if len(id) != 32 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}
