// Package session attaches a per-browser Session to each request. The
// cookie holds only an opaque id; state lives server-side in a Store.
package session

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Iwan2264/HMS/models"
)

const (
	CookieName = "hms_session"
	contextKey = "session"
)

// Store keeps session state between requests.
type Store interface {
	Get(id string) (*models.Session, error)
	Save(s *models.Session) error
}

// Middleware loads the request's session (creating one on first visit)
// and saves it back once the handler has run.
func Middleware(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *models.Session

		if id, err := c.Cookie(CookieName); err == nil {
			var loadErr error
			sess, loadErr = store.Get(id)
			if loadErr != nil {
				log.Println("failed to load session, starting a new one:", loadErr)
			}
		}
		if sess == nil {
			sess = models.NewSession(uuid.NewString())
			c.SetCookie(CookieName, sess.ID, 0, "/", "", false, true)
		}

		c.Set(contextKey, sess)
		c.Next()

		if err := store.Save(sess); err != nil {
			log.Println("failed to save session:", err)
		}
	}
}

// FromContext returns the session attached by the middleware.
func FromContext(c *gin.Context) *models.Session {
	return c.MustGet(contextKey).(*models.Session)
}
