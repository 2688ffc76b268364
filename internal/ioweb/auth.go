package ioweb

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gnkin/pkg/locale"
	"github.com/gnames/gnkin/pkg/roster"
	"github.com/gnames/gnkin/pkg/user"
)

// selfPreferences can be changed by users themselves.
var selfPreferences = []string{
	user.PrefLanguage,
	user.PrefContactMethod,
	user.PrefVisibleOnline,
	user.PrefComment,
}

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sess, u, err := s.users.Login(
		c.Request.Context(), req.Identifier, req.Password, c.ClientIP(),
	)
	if err != nil {
		fail(c, err)
		return
	}

	maxAge := s.cfg.Auth.SessionTTLMinutes * 60
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, sess.Token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": sess.Token,
		"user":  u,
	})
}

func (s *Server) logout(c *gin.Context) {
	token := sessionToken(c)
	if token != "" {
		if err := s.users.Logout(c.Request.Context(), token); err != nil {
			fail(c, err)
			return
		}
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

type registerRequest struct {
	UserName string `json:"user_name"`
	RealName string `json:"real_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Language string `json:"language"`
}

func (s *Server) register(c *gin.Context) {
	if !s.cfg.Auth.AllowRegistration {
		c.AbortWithStatusJSON(http.StatusForbidden,
			gin.H{"error": "registration is disabled"})
		return
	}

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	e := roster.Entry{
		UserName: req.UserName,
		RealName: req.RealName,
		Email:    req.Email,
		Password: req.Password,
		Language: req.Language,
	}
	if err := e.Validate(); err != nil {
		badRequest(c, err)
		return
	}
	if e.Language == "" {
		e.Language = currentLocale(c).Tag
	}

	u, err := s.users.Register(
		c.Request.Context(), e.UserName, e.RealName, e.Email, e.Password, e.Language,
	)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (s *Server) me(c *gin.Context) {
	u := currentUser(c)
	admin, err := s.users.IsAdmin(c.Request.Context(), u)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":     u,
		"is_admin": admin,
		"locale":   currentLocale(c),
	})
}

type passwordRequest struct {
	Current  string `json:"current"  binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) changePassword(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	u := currentUser(c)
	ok, err := s.users.CheckPassword(ctx, u, req.Current)
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		fail(c, user.ErrBadCredentials)
		return
	}
	if err = s.users.SetPassword(ctx, u, req.Password); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) preference(c *gin.Context) {
	name := c.Param("name")
	val, err := s.users.Preference(c.Request.Context(), currentUser(c), name, "")
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "value": val})
}

type valueRequest struct {
	Value string `json:"value"`
}

func (s *Server) setPreference(c *gin.Context) {
	name := c.Param("name")
	if !slices.Contains(selfPreferences, name) {
		c.AbortWithStatusJSON(http.StatusForbidden,
			gin.H{"error": fmt.Sprintf("preference '%s' cannot be changed", name)})
		return
	}

	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if name == user.PrefLanguage && req.Value != "" {
		if _, ok := locale.Find(req.Value); !ok {
			badRequest(c, fmt.Errorf("unsupported language '%s'", req.Value))
			return
		}
	}

	err := s.users.SetPreference(c.Request.Context(), currentUser(c), name, req.Value)
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
