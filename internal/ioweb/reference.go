package ioweb

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	gnkin "github.com/gnames/gnkin/pkg"
	"github.com/gnames/gnkin/pkg/census"
	"github.com/gnames/gnkin/pkg/locale"
	"github.com/gnames/gnkin/pkg/surname"
)

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": gnkin.Version,
	})
}

func locales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"current": currentLocale(c),
		"locales": locale.All(),
	})
}

type traditionInfo struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

func traditions(c *gin.Context) {
	desc := surname.Descriptions()
	keys := surname.Keys()
	res := make([]traditionInfo, len(keys))
	for i, k := range keys {
		res[i] = traditionInfo{Key: k, Description: desc[k]}
	}
	c.JSON(http.StatusOK, gin.H{
		"default":    currentLocale(c).Tradition,
		"traditions": res,
	})
}

// namesRequest holds GEDCOM names of existing relatives. Tree takes
// precedence over Tradition; without both the tradition of the
// negotiated locale is used.
type namesRequest struct {
	Tree      string `json:"tree"`
	Tradition string `json:"tradition"`
	Father    string `json:"father"`
	Mother    string `json:"mother"`
	Child     string `json:"child"`
	Spouse    string `json:"spouse"`
	Sex       string `json:"sex"`
}

func (s *Server) names(c *gin.Context) {
	var req namesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	key, err := s.traditionKey(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	trad, err := surname.New(key)
	if err != nil {
		fail(c, err)
		return
	}

	sex := surname.ParseSex(req.Sex)
	var res surname.Names
	switch c.Param("relation") {
	case "child":
		res = trad.NewChildNames(req.Father, req.Mother, sex)
	case "parent":
		res = trad.NewParentNames(req.Child, sex)
	case "spouse":
		res = trad.NewSpouseNames(req.Spouse, sex)
	default:
		c.AbortWithStatusJSON(http.StatusNotFound,
			gin.H{"error": "relation must be child, parent or spouse"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tradition": strings.ToLower(key),
		"names":     res,
	})
}

func (s *Server) traditionKey(c *gin.Context, req namesRequest) (string, error) {
	if req.Tree != "" {
		t, err := s.findTree(c, req.Tree)
		if err != nil {
			return "", err
		}
		return s.trees.Tradition(c.Request.Context(), t.ID)
	}
	if req.Tradition != "" {
		return req.Tradition, nil
	}
	return currentLocale(c).Tradition, nil
}

func censusPlaces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"places": census.Places()})
}

func censusPlace(c *gin.Context) {
	place, ok := census.FindPlace(c.Param("place"))
	if !ok {
		fail(c, fmt.Errorf("%w: %s", errNoCensusPlace, c.Param("place")))
		return
	}
	c.JSON(http.StatusOK, place)
}
