package ioweb

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gnkin/pkg/locale"
	"github.com/gnames/gnkin/pkg/user"
)

const (
	// SessionCookie carries the session token for browser clients.
	SessionCookie = "gnkin_session"

	keyUser   = "gnkin.user"
	keyToken  = "gnkin.token"
	keyLocale = "gnkin.locale"
)

// accessLog logs each request with its method, path, status and duration.
// Paths listed in skip pass through without logging.
func accessLog(skip ...string) gin.HandlerFunc {
	skipped := make(map[string]bool, len(skip))
	for _, p := range skip {
		skipped[p] = true
	}
	return func(c *gin.Context) {
		if skipped[c.Request.URL.Path] {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"clientIP", c.ClientIP(),
		)
	}
}

// cors answers preflight requests and adds CORS headers for allowed
// origins.
func cors(originsCSV string) gin.HandlerFunc {
	origins := parseOrigins(originsCSV)
	allowAny := origins["*"]
	return func(c *gin.Context) {
		origin := strings.TrimSpace(c.GetHeader("Origin"))
		if origin != "" && (allowAny || origins[origin]) {
			// Credentials only go to origins listed by name.
			if origins[origin] {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Credentials", "true")
			} else {
				c.Header("Access-Control-Allow-Origin", "*")
			}
			c.Header("Access-Control-Allow-Headers",
				"Authorization, Content-Type, Accept-Language")
			c.Header("Access-Control-Allow-Methods",
				"GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func parseOrigins(raw string) map[string]bool {
	res := make(map[string]bool)
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			res[v] = true
		}
	}
	if len(res) == 0 {
		res["*"] = true
	}
	return res
}

// sessionToken reads a bearer token, falling back to the session cookie.
func sessionToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	if token, err := c.Cookie(SessionCookie); err == nil {
		return token
	}
	return ""
}

// authenticate resolves the session to a user. Requests without a live
// session run as the visitor.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := user.Visitor()
		token := sessionToken(c)
		if token != "" {
			found, err := s.users.FindBySession(c.Request.Context(), token)
			if err != nil {
				fail(c, err)
				return
			}
			if found != nil {
				u = found
				c.Set(keyToken, token)
			}
		}
		c.Set(keyUser, u)
		c.Next()
	}
}

// negotiateLocale picks the interface language: the language preference
// of a logged-in user wins over Accept-Language.
func (s *Server) negotiateLocale() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if !u.IsVisitor() {
			lang, err := s.users.Preference(c.Request.Context(), u, user.PrefLanguage, "")
			if err != nil {
				fail(c, err)
				return
			}
			if l, ok := locale.Find(lang); ok {
				c.Set(keyLocale, l)
				c.Header("Content-Language", l.Tag)
				c.Next()
				return
			}
		}
		l := locale.Match(c.GetHeader("Accept-Language"))
		c.Set(keyLocale, l)
		c.Header("Content-Language", l.Tag)
		c.Next()
	}
}

func requireUser(c *gin.Context) {
	if currentUser(c).IsVisitor() {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			gin.H{"error": "authentication required"})
		return
	}
	c.Next()
}

func (s *Server) requireAdmin(c *gin.Context) {
	u := currentUser(c)
	if u.IsVisitor() {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			gin.H{"error": "authentication required"})
		return
	}
	ok, err := s.users.IsAdmin(c.Request.Context(), u)
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden,
			gin.H{"error": "administrator access required"})
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) *user.User {
	if v, ok := c.Get(keyUser); ok {
		if u, ok := v.(*user.User); ok {
			return u
		}
	}
	return user.Visitor()
}

func currentLocale(c *gin.Context) locale.Locale {
	if v, ok := c.Get(keyLocale); ok {
		if l, ok := v.(locale.Locale); ok {
			return l
		}
	}
	return locale.All()[0]
}
