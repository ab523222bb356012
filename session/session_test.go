package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iwan2264/HMS/models"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	got, err := m.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	s := models.NewSession("abc")
	s.Page = models.PageAdmin
	require.NoError(t, m.Save(s))

	got, err = m.Get("abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.PageAdmin, got.Page)
}

func TestMiddlewareCreatesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewMemoryStore()

	r := gin.New()
	r.Use(Middleware(store))
	r.GET("/", func(c *gin.Context) {
		sess := FromContext(c)
		assert.Equal(t, models.PageDirectory, sess.Page)
		c.String(http.StatusOK, sess.ID)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	cookie := w.Result().Cookies()
	require.NotEmpty(t, cookie)
	assert.Equal(t, CookieName, cookie[0].Name)
	assert.Equal(t, w.Body.String(), cookie[0].Value)
}

func TestMiddlewarePersistsMutations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewMemoryStore()

	r := gin.New()
	r.Use(Middleware(store))
	r.GET("/admin", func(c *gin.Context) {
		FromContext(c).GotoAdmin()
		c.Status(http.StatusOK)
	})
	r.GET("/page", func(c *gin.Context) {
		c.String(http.StatusOK, string(FromContext(c).Page))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	cookie := w.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "admin", w.Body.String())
}

type failingStore struct {
	*MemoryStore
}

func (f *failingStore) Get(id string) (*models.Session, error) {
	return nil, errors.New("backend unavailable")
}

func TestMiddlewareRecoversFromLoadFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &failingStore{NewMemoryStore()}

	r := gin.New()
	r.Use(Middleware(store))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, string(FromContext(c).Page))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale-id"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The request still serves, on a fresh session.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "directory", w.Body.String())
}

func TestSessionsAreIsolated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewMemoryStore()

	r := gin.New()
	r.Use(Middleware(store))
	r.GET("/admin", func(c *gin.Context) {
		FromContext(c).GotoAdmin()
		c.Status(http.StatusOK)
	})
	r.GET("/page", func(c *gin.Context) {
		c.String(http.StatusOK, string(FromContext(c).Page))
	})

	// First visitor goes to the admin page.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	// A fresh visitor with no cookie still starts on the directory.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, "directory", w.Body.String())
}
