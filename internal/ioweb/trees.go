package ioweb

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gnkin/pkg/surname"
	"github.com/gnames/gnkin/pkg/tree"
)

func (s *Server) findTree(c *gin.Context, name string) (*tree.Tree, error) {
	t, err := s.trees.FindByName(c.Request.Context(), name)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: %s", tree.ErrNotFound, name)
	}
	return t, nil
}

func (s *Server) listTrees(c *gin.Context) {
	res, err := s.trees.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trees": res})
}

type createTreeRequest struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Tradition string `json:"tradition"`
}

// createTree adds a tree. Without an explicit tradition it gets the one
// usual for the negotiated language.
func (s *Server) createTree(c *gin.Context) {
	var req createTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	loc := currentLocale(c)
	trad := strings.TrimSpace(req.Tradition)
	if trad == "" {
		trad = loc.Tradition
	}
	if _, err := surname.New(trad); err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()
	t, err := s.trees.CreateWithSettings(ctx,
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Title),
		map[string]string{
			tree.SettingSurnameTradition: trad,
			tree.SettingLanguage:         loc.Tag,
		})
	if err != nil {
		fail(c, err)
		return
	}

	trad, err = s.trees.Tradition(ctx, t.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"tree":      t,
		"tradition": trad,
	})
}

func (s *Server) treeRole(c *gin.Context) {
	t, err := s.findTree(c, c.Param("tree"))
	if err != nil {
		fail(c, err)
		return
	}
	role, err := s.users.Role(c.Request.Context(), currentUser(c), t.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tree": t.Name, "role": role})
}

func (s *Server) setTreeSetting(c *gin.Context) {
	t, err := s.findTree(c, c.Param("tree"))
	if err != nil {
		fail(c, err)
		return
	}
	var req valueRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	name := c.Param("setting")
	if err = s.trees.SetSetting(ctx, t.ID, name, req.Value); err != nil {
		fail(c, err)
		return
	}
	val, err := s.trees.Setting(ctx, t.ID, name, "")
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "value": val})
}
