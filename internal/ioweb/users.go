package ioweb

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gnkin/pkg/roster"
	"github.com/gnames/gnkin/pkg/user"
)

func (s *Server) listUsers(c *gin.Context) {
	f, err := user.ParseFilter(c.Query("filter"))
	if err != nil {
		fail(c, err)
		return
	}
	res, err := s.users.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"filter": f,
		"users":  res,
	})
}

type createUserRequest struct {
	UserName string `json:"user_name"`
	RealName string `json:"real_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Language string `json:"language"`
	Admin    bool   `json:"admin"`
}

// createUser adds a ready to use account: it is verified and approved.
func (s *Server) createUser(c *gin.Context) {
	var req createUserRequest
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
		Admin:    req.Admin,
	}
	if err := e.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	prefs := map[string]string{user.PrefLanguage: e.Language}
	if e.Admin {
		prefs[user.PrefCanAdmin] = "1"
	}
	u, err := s.users.CreateActive(c.Request.Context(),
		e.UserName, e.RealName, e.Email, e.Password, prefs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (s *Server) latestUser(c *gin.Context) {
	u, err := s.users.FindLatestToRegister(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if u == nil {
		fail(c, user.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, u)
}

// userParam finds the user given by the :id parameter. On failure the
// response is already written and the result is nil.
func (s *Server) userParam(c *gin.Context) *user.User {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		badRequest(c, fmt.Errorf("invalid user id '%s'", c.Param("id")))
		return nil
	}
	u, err := s.users.Find(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return nil
	}
	if u == nil {
		fail(c, fmt.Errorf("%w: %d", user.ErrNotFound, id))
		return nil
	}
	return u
}

func (s *Server) getUser(c *gin.Context) {
	u := s.userParam(c)
	if u == nil {
		return
	}
	ctx := c.Request.Context()
	admin, err := s.users.IsAdmin(ctx, u)
	if err != nil {
		fail(c, err)
		return
	}
	prefs := make(map[string]string)
	for _, name := range []string{
		user.PrefVerified, user.PrefVerifiedByAdmin,
		user.PrefLanguage, user.PrefRegTimestamp, user.PrefSessionTime,
	} {
		v, err := s.users.Preference(ctx, u, name, "")
		if err != nil {
			fail(c, err)
			return
		}
		prefs[name] = v
	}
	c.JSON(http.StatusOK, gin.H{
		"user":        u,
		"is_admin":    admin,
		"preferences": prefs,
	})
}

func (s *Server) deleteUser(c *gin.Context) {
	u := s.userParam(c)
	if u == nil {
		return
	}
	me := currentUser(c)
	if u.ID == me.ID {
		badRequest(c, errors.New("administrators cannot delete themselves"))
		return
	}
	if err := s.users.Delete(c.Request.Context(), u, me.ID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) approveUser(c *gin.Context) {
	u := s.userParam(c)
	if u == nil {
		return
	}
	if err := s.users.Approve(c.Request.Context(), u); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) verifyUser(c *gin.Context) {
	u := s.userParam(c)
	if u == nil {
		return
	}
	if err := s.users.Verify(c.Request.Context(), u); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type roleRequest struct {
	Role string `json:"role"`
}

func (s *Server) setRole(c *gin.Context) {
	u := s.userParam(c)
	if u == nil {
		return
	}
	t, err := s.findTree(c, c.Param("tree"))
	if err != nil {
		fail(c, err)
		return
	}

	var req roleRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	role, ok := user.ParseRole(req.Role)
	if !ok {
		badRequest(c, fmt.Errorf("unknown role '%s'", req.Role))
		return
	}
	val := string(role)
	if role == user.RoleNone {
		val = ""
	}

	ctx := c.Request.Context()
	err = s.users.SetTreeSetting(ctx, u, t.ID, user.TreeCanEdit, val)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tree": t.Name, "role": role})
}
