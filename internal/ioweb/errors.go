package ioweb

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/errcode"
	"github.com/gnames/gnkin/pkg/surname"
	"github.com/gnames/gnkin/pkg/tree"
	"github.com/gnames/gnkin/pkg/user"
)

// ListenError is returned when the HTTP server cannot start or stops
// with an error.
func ListenError(port int, err error) error {
	msg := "Cannot serve the API on port <em>%d</em>"
	vars := []any{port}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WebListenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: listen on %d: %w", fn.Name(), port, err),
	}
}

// errNoCensusPlace is returned for unknown census places.
var errNoCensusPlace = errors.New("unknown census place")

// statuses maps domain errors to HTTP status codes. Anything else is an
// internal error.
var statuses = []struct {
	err    error
	status int
}{
	{user.ErrNotFound, http.StatusNotFound},
	{tree.ErrNotFound, http.StatusNotFound},
	{errNoCensusPlace, http.StatusNotFound},
	{user.ErrDuplicate, http.StatusConflict},
	{tree.ErrDuplicate, http.StatusConflict},
	{user.ErrBadCredentials, http.StatusUnauthorized},
	{user.ErrNotVerified, http.StatusForbidden},
	{user.ErrNotApproved, http.StatusForbidden},
	{user.ErrUnknownFilter, http.StatusBadRequest},
	{user.ErrPasswordTooLong, http.StatusBadRequest},
	{tree.ErrInvalidName, http.StatusBadRequest},
	{surname.ErrUnknownTradition, http.StatusBadRequest},
}

// fail writes err as a JSON error and aborts the request.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	for _, v := range statuses {
		if errors.Is(err, v.err) {
			status = v.status
			break
		}
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

