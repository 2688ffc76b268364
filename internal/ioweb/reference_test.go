package ioweb_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrees(t *testing.T) {
	e := setup(t)
	e.addUser(t, "admin", true)
	token := e.login(t, "admin")

	w := e.do(t, http.MethodPost, "/api/trees", "", gin.H{"name": "kin"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPost, "/api/trees", token, gin.H{
		"name":  "saga",
		"title": "Family Saga",
	}, "Accept-Language", "is")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "icelandic", decode(t, w)["tradition"],
		"tradition follows the language")

	w = e.do(t, http.MethodPost, "/api/trees", token, gin.H{
		"name":      "garcia",
		"tradition": "Spanish",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode(t, w)
	assert.Equal(t, "spanish", res["tradition"])
	assert.Equal(t, "garcia", res["tree"].(map[string]any)["title"])

	tests := []struct {
		msg    string
		body   gin.H
		status int
	}{
		{"duplicate", gin.H{"name": "saga"}, http.StatusConflict},
		{"invalid name", gin.H{"name": "two words"}, http.StatusBadRequest},
		{"unknown tradition", gin.H{"name": "x", "tradition": "klingon"}, http.StatusBadRequest},
	}
	for _, v := range tests {
		w := e.do(t, http.MethodPost, "/api/trees", token, v.body)
		assert.Equal(t, v.status, w.Code, v.msg)
	}

	w = e.do(t, http.MethodGet, "/api/trees", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	trees := decode(t, w)["trees"].([]any)
	require.Len(t, trees, 2)
	assert.Equal(t, "Family Saga", trees[0].(map[string]any)["title"])

	w = e.do(t, http.MethodPut, "/api/trees/saga/settings/SURNAME_TRADITION", token,
		gin.H{"value": "Polish"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "polish", decode(t, w)["value"])

	w = e.do(t, http.MethodPut, "/api/trees/saga/settings/SURNAME_TRADITION", token,
		gin.H{"value": "klingon"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPut, "/api/trees/nowhere/settings/TITLE", token,
		gin.H{"value": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNames(t *testing.T) {
	e := setup(t)
	e.addUser(t, "admin", true)
	token := e.login(t, "admin")

	w := e.do(t, http.MethodPost, "/api/names/child", "", gin.H{
		"tradition": "spanish",
		"father":    "Gabriel /Garcia/ /Iglesias/",
		"mother":    "Maria /Ruiz/ /Lorca/",
		"sex":       "m",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode(t, w)
	assert.Equal(t, "spanish", res["tradition"])
	names := res["names"].(map[string]any)
	assert.Equal(t, "/Garcia/ /Ruiz/", names["NAME"])

	t.Run("tradition of the language", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/names/child", "", gin.H{
			"father": "Jon Einarsson",
			"sex":    "M",
		}, "Accept-Language", "is-IS")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode(t, w)
		assert.Equal(t, "icelandic", res["tradition"])
		assert.Equal(t, "Jonsson", res["names"].(map[string]any)["NAME"])
	})

	t.Run("tradition of the tree", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/trees", token, gin.H{
			"name":      "saga",
			"tradition": "icelandic",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = e.do(t, http.MethodPost, "/api/names/child", "", gin.H{
			"tree":      "saga",
			"tradition": "spanish",
			"father":    "Jon Einarsson",
			"sex":       "F",
		})
		require.Equal(t, http.StatusOK, w.Code)
		res := decode(t, w)
		assert.Equal(t, "icelandic", res["tradition"])
		assert.Equal(t, "Jonsdottir", res["names"].(map[string]any)["NAME"])
	})

	tests := []struct {
		msg    string
		path   string
		body   gin.H
		status int
	}{
		{"unknown relation", "/api/names/cousin", gin.H{}, http.StatusNotFound},
		{"unknown tradition", "/api/names/child", gin.H{"tradition": "klingon"},
			http.StatusBadRequest},
		{"unknown tree", "/api/names/child", gin.H{"tree": "nowhere"},
			http.StatusNotFound},
	}
	for _, v := range tests {
		w := e.do(t, http.MethodPost, v.path, "", v.body)
		assert.Equal(t, v.status, w.Code, v.msg)
	}
}

func TestReference(t *testing.T) {
	e := setup(t)

	w := e.do(t, http.MethodGet, "/api/traditions", "", nil, "Accept-Language", "pl")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, "polish", res["default"])
	assert.Len(t, res["traditions"], 9)

	w = e.do(t, http.MethodGet, "/api/locales", "", nil, "Accept-Language", "fr-CA")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fr", w.Header().Get("Content-Language"))
	res = decode(t, w)
	assert.Equal(t, "fr", res["current"].(map[string]any)["tag"])

	w = e.do(t, http.MethodGet, "/api/census", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["places"])

	w = e.do(t, http.MethodGet, "/api/census/france", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode(t, w)
	assert.Equal(t, "France", res["name"])
	assert.NotEmpty(t, res["censuses"])

	w = e.do(t, http.MethodGet, "/api/census/atlantis", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
