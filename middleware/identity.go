package middleware

import (
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionName = "storefront_session"

	sessionKeyUserID    = "user_id"
	sessionKeySessionID = "sid"

	identityContextKey = "identity"
)

// Identity is the resolved owner of a request: a registered user when logged
// in, otherwise a stable anonymous session id issued via the session cookie.
// Exactly one of the two fields is set.
type Identity struct {
	UserID    string
	SessionID string
}

// Authenticated reports whether the identity belongs to a logged-in user.
func (id Identity) Authenticated() bool {
	return id.UserID != ""
}

// SessionStore builds the cookie-backed session store shared by every route.
func SessionStore() gin.HandlerFunc {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "storefront-secret-change-in-production"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7, // 1 week
		HttpOnly: true,
	})
	return sessions.Sessions(SessionName, store)
}

// ResolveIdentity maps the request to an Identity and stores it on the
// context. Anonymous visitors get a session id minted on first contact so
// their cart and wishlist have a stable key.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		if userID, ok := session.Get(sessionKeyUserID).(string); ok && userID != "" {
			c.Set(identityContextKey, Identity{UserID: userID})
			c.Next()
			return
		}

		sid, ok := session.Get(sessionKeySessionID).(string)
		if !ok || sid == "" {
			sid = uuid.NewString()
			session.Set(sessionKeySessionID, sid)
			if err := session.Save(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
				c.Abort()
				return
			}
		}
		c.Set(identityContextKey, Identity{SessionID: sid})
		c.Next()
	}
}

// SetIdentity stores an already resolved identity on the context.
// ResolveIdentity does this for real requests; tests use it to pin one.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityContextKey, id)
}

// CurrentIdentity returns the identity resolved for this request.
func CurrentIdentity(c *gin.Context) Identity {
	if v, ok := c.Get(identityContextKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{}
}

// Login binds the session cookie to a user id.
func Login(c *gin.Context, userID string) error {
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, userID)
	return session.Save()
}

// Logout drops the user binding but keeps the anonymous session id so the
// visitor can keep browsing with a guest cart.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionKeyUserID)
	return session.Save()
}

// AnonymousSessionID returns the guest session id carried by the cookie, if
// any. Used to merge a guest cart into the user cart at login.
func AnonymousSessionID(c *gin.Context) string {
	session := sessions.Default(c)
	if sid, ok := session.Get(sessionKeySessionID).(string); ok {
		return sid
	}
	return ""
}
