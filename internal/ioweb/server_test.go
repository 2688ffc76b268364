package ioweb_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gnkin/internal/iotesting"
	"github.com/gnames/gnkin/internal/iotree"
	"github.com/gnames/gnkin/internal/iouser"
	"github.com/gnames/gnkin/internal/ioweb"
	gnkin "github.com/gnames/gnkin/pkg"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/tree"
	"github.com/gnames/gnkin/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	handler http.Handler
	users   user.Manager
	trees   tree.Manager
}

func setup(t *testing.T, opts ...config.Option) env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := iotesting.SQLiteConfig(t)
	cfg.Update(opts)
	op := iotesting.Open(t, cfg)
	users, err := iouser.New(op, cfg)
	require.NoError(t, err)
	t.Cleanup(users.Close)
	trees := iotree.New(op)

	srv := ioweb.New(cfg, users, trees)
	return env{handler: srv.Handler(), users: users, trees: trees}
}

// addUser creates an approved and verified account.
func (e env) addUser(t *testing.T, name string, admin bool) *user.User {
	t.Helper()
	ctx := context.Background()
	u, err := e.users.Create(ctx, name, name+" Real", name+"@example.org", "secret")
	require.NoError(t, err)
	require.NoError(t, e.users.Verify(ctx, u))
	require.NoError(t, e.users.Approve(ctx, u))
	if admin {
		require.NoError(t, e.users.SetPreference(ctx, u, user.PrefCanAdmin, "1"))
	}
	return u
}

func (e env) login(t *testing.T, name string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/login", "", gin.H{
		"identifier": name,
		"password":   "secret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func (e env) do(
	t *testing.T,
	method, path, token string,
	body any,
	headers ...string,
) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestHealth(t *testing.T) {
	e := setup(t)
	w := e.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, "ok", res["status"])
	assert.Equal(t, gnkin.Version, res["version"])
}

func TestCORS(t *testing.T) {
	e := setup(t, config.OptServerCORSOrigins("https://kin.example.org"))

	t.Run("allowed origin", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/health", "", nil,
			"Origin", "https://kin.example.org")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://kin.example.org",
			w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("other origin", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/health", "", nil,
			"Origin", "https://evil.example.com")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		w := e.do(t, http.MethodOptions, "/api/login", "", nil,
			"Origin", "https://kin.example.org")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	})

	t.Run("wildcard without credentials", func(t *testing.T) {
		e := setup(t, config.OptServerCORSOrigins("*"))
		w := e.do(t, http.MethodGet, "/api/health", "", nil,
			"Origin", "https://evil.example.com")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestLoginLogout(t *testing.T) {
	e := setup(t)
	e.addUser(t, "admin", true)

	w := e.do(t, http.MethodPost, "/api/login", "", gin.H{
		"identifier": "admin",
		"password":   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPost, "/api/login", "", gin.H{"identifier": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := e.login(t, "admin@example.org")

	w = e.do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, true, res["is_admin"])
	u := res["user"].(map[string]any)
	assert.Equal(t, "admin", u["user_name"])

	t.Run("session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.AddCookie(&http.Cookie{Name: ioweb.SessionCookie, Value: token})
		w := httptest.NewRecorder()
		e.handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	w = e.do(t, http.MethodPost, "/api/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPost, "/api/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code, "logout is idempotent")
}

func TestRegister(t *testing.T) {
	body := gin.H{
		"user_name": "newbie",
		"real_name": "New Bie",
		"email":     "newbie@example.org",
		"password":  "secret",
	}

	t.Run("disabled", func(t *testing.T) {
		e := setup(t)
		w := e.do(t, http.MethodPost, "/api/register", "", body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		ctx := context.Background()
		e := setup(t, config.OptAuthAllowRegistration(true))

		w := e.do(t, http.MethodPost, "/api/register", "", gin.H{
			"user_name": "bad",
			"real_name": "Bad",
			"email":     "not an email",
			"password":  "secret",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = e.do(t, http.MethodPost, "/api/register", "", gin.H{
			"user_name": "long",
			"real_name": "Long",
			"email":     "long@example.org",
			"password":  strings.Repeat("x", 80),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "72 bytes")

		w = e.do(t, http.MethodPost, "/api/register", "", body,
			"Accept-Language", "de-AT, en;q=0.5")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = e.do(t, http.MethodPost, "/api/register", "", body)
		assert.Equal(t, http.StatusConflict, w.Code)

		u, err := e.users.FindByUserName(ctx, "newbie")
		require.NoError(t, err)
		require.NotNil(t, u)
		lang, err := e.users.Preference(ctx, u, user.PrefLanguage, "")
		require.NoError(t, err)
		assert.Equal(t, "de", lang)

		w = e.do(t, http.MethodPost, "/api/login", "", gin.H{
			"identifier": "newbie",
			"password":   "secret",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "not verified")
	})
}

func TestMe(t *testing.T) {
	e := setup(t)
	e.addUser(t, "jdoe", false)
	token := e.login(t, "jdoe")

	w := e.do(t, http.MethodPut, "/api/me/preferences/language", token,
		gin.H{"value": "fr"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodGet, "/api/me/preferences/language", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fr", decode(t, w)["value"])

	t.Run("language preference wins over header", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/locales", token, nil,
			"Accept-Language", "de")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fr", w.Header().Get("Content-Language"))
	})

	w = e.do(t, http.MethodPut, "/api/me/preferences/language", token,
		gin.H{"value": "xx-unknown"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPut, "/api/me/preferences/canadmin", token,
		gin.H{"value": "1"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodPut, "/api/me/password", token, gin.H{
		"current":  "wrong",
		"password": "better",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPut, "/api/me/password", token, gin.H{
		"current":  "secret",
		"password": strings.Repeat("x", 80),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPut, "/api/me/password", token, gin.H{
		"current":  "secret",
		"password": "better",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodPost, "/api/login", "", gin.H{
		"identifier": "jdoe",
		"password":   "better",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUsersAdmin(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	admin := e.addUser(t, "admin", true)
	e.addUser(t, "jdoe", false)
	adminToken := e.login(t, "admin")
	userToken := e.login(t, "jdoe")

	w := e.do(t, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = e.do(t, http.MethodGet, "/api/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodPost, "/api/users", adminToken, gin.H{
		"user_name": "long",
		"real_name": "Long",
		"email":     "long@example.org",
		"password":  strings.Repeat("x", 80),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPost, "/api/users", adminToken, gin.H{
		"user_name": "mmuster",
		"real_name": "Max Muster",
		"email":     "max@example.org",
		"password":  "secret",
		"language":  "de",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := int(decode(t, w)["id"].(float64))

	w = e.do(t, http.MethodPost, "/api/login", "", gin.H{
		"identifier": "mmuster",
		"password":   "secret",
	})
	assert.Equal(t, http.StatusOK, w.Code, "created users can log in")

	w = e.do(t, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["users"], 3)

	w = e.do(t, http.MethodGet, "/api/users?filter=administrators", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["users"], 1)

	w = e.do(t, http.MethodGet, "/api/users?filter=bogus", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodGet, "/api/users/latest", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, "without registrations the newest account wins")
	assert.Equal(t, id, int(decode(t, w)["id"].(float64)))

	w = e.do(t, http.MethodGet, "/api/users/"+strconv.Itoa(id), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	prefs := res["preferences"].(map[string]any)
	assert.Equal(t, "de", prefs[user.PrefLanguage])
	assert.Equal(t, "1", prefs[user.PrefVerifiedByAdmin])

	w = e.do(t, http.MethodGet, "/api/users/999", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = e.do(t, http.MethodGet, "/api/users/abc", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	t.Run("roles", func(t *testing.T) {
		_, err := e.trees.Create(ctx, "royals", "Royal Family")
		require.NoError(t, err)

		path := "/api/users/" + strconv.Itoa(id) + "/trees/royals/role"
		w := e.do(t, http.MethodPut, path, adminToken, gin.H{"role": "edit"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = e.do(t, http.MethodPut, path, adminToken, gin.H{"role": "king"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = e.do(t, http.MethodPut,
			"/api/users/"+strconv.Itoa(id)+"/trees/nowhere/role", adminToken,
			gin.H{"role": "edit"})
		assert.Equal(t, http.StatusNotFound, w.Code)

		token := e.login(t, "mmuster")
		w = e.do(t, http.MethodGet, "/api/trees/royals/role", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "edit", decode(t, w)["role"])

		w = e.do(t, http.MethodGet, "/api/trees/royals/role", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", decode(t, w)["role"])
	})

	w = e.do(t, http.MethodDelete, "/api/users/"+strconv.Itoa(admin.ID), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodDelete, "/api/users/"+strconv.Itoa(id), adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	u, err := e.users.Find(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	e := setup(t, config.OptAuthAllowRegistration(true))
	e.addUser(t, "admin", true)
	adminToken := e.login(t, "admin")

	u, err := e.users.Register(ctx, "newbie", "New Bie", "newbie@example.org", "secret", "en-GB")
	require.NoError(t, err)

	w := e.do(t, http.MethodGet, "/api/users/latest", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "newbie", decode(t, w)["user_name"])

	w = e.do(t, http.MethodGet, "/api/users?filter=unapproved", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["users"], 1)

	for _, action := range []string{"verify", "approve"} {
		w = e.do(t, http.MethodPost, "/api/users/"+strconv.Itoa(u.ID)+"/"+action, adminToken, nil)
		assert.Equal(t, http.StatusNoContent, w.Code, action)
	}

	e.login(t, "newbie")
}
