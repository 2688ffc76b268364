package ioweb

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/errcode"
	"github.com/gnames/gnkin/pkg/surname"
	"github.com/gnames/gnkin/pkg/tree"
	"github.com/gnames/gnkin/pkg/user"
	"github.com/stretchr/testify/assert"
)

func TestFail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		msg    string
		err    error
		status int
		body   string
	}{
		{"not found", fmt.Errorf("%w: 7", user.ErrNotFound), http.StatusNotFound, "user not found: 7"},
		{"joined", errors.Join(user.ErrBadCredentials, nil), http.StatusUnauthorized, "incorrect"},
		{"tree duplicate", tree.ErrDuplicate, http.StatusConflict, "tree name"},
		{"tradition", surname.ErrUnknownTradition, http.StatusBadRequest, "tradition"},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, v := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		fail(c, v.err)
		assert.Equal(t, v.status, w.Code, v.msg)
		assert.Contains(t, w.Body.String(), v.body, v.msg)
		assert.True(t, c.IsAborted(), v.msg)
	}
}

func TestListenError(t *testing.T) {
	err := ListenError(8080, errors.New("address in use"))
	var gnErr *gn.Error
	assert.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.WebListenError, gnErr.Code)
	assert.Equal(t, []any{8080}, gnErr.Vars)
	assert.Contains(t, gnErr.Err.Error(), "ioweb.TestListenError")
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, map[string]bool{"*": true}, parseOrigins(" , "))
	assert.Equal(t,
		map[string]bool{"https://a.org": true, "https://b.org": true},
		parseOrigins("https://a.org, https://b.org"),
	)
}
