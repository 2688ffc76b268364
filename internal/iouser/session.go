package iouser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gnames/gnkin/pkg/schema"
	"github.com/gnames/gnkin/pkg/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Login checks credentials, opens a session and records the attempt in
// the site log. Unknown identifiers and wrong passwords both return
// user.ErrBadCredentials.
func (m *manager) Login(
	ctx context.Context,
	identifier, password, ip string,
) (*user.Session, *user.User, error) {
	u, err := m.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		err = m.logAuth(ctx, nil, ip,
			"Login failed (no such user/email): "+identifier)
		return nil, nil, errors.Join(user.ErrBadCredentials, err)
	}

	ok, err := m.CheckPassword(ctx, u, password)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		err = m.logAuth(ctx, u, ip,
			"Login failed (incorrect password): "+u.UserName)
		return nil, nil, errors.Join(user.ErrBadCredentials, err)
	}

	for _, v := range []struct {
		pref   string
		reason string
		err    error
	}{
		{user.PrefVerified, "not verified by user", user.ErrNotVerified},
		{user.PrefVerifiedByAdmin, "not approved by admin", user.ErrNotApproved},
	} {
		val, err := m.Preference(ctx, u, v.pref, "")
		if err != nil {
			return nil, nil, err
		}
		if val != "1" {
			err = m.logAuth(ctx, u, ip,
				fmt.Sprintf("Login failed (%s): %s", v.reason, u.UserName))
			return nil, nil, errors.Join(v.err, err)
		}
	}

	gdb, err := m.db(ctx)
	if err != nil {
		return nil, nil, err
	}
	now := m.now().UTC()
	row := schema.Session{
		ID:          uuid.NewString(),
		SessionTime: now,
		UserID:      u.ID,
		IPAddress:   ip,
	}
	if err = gdb.Create(&row).Error; err != nil {
		return nil, nil, SessionError(err)
	}

	err = m.SetPreference(ctx, u, user.PrefSessionTime,
		strconv.FormatInt(now.Unix(), 10))
	if err != nil {
		return nil, nil, err
	}
	if err = m.logAuth(ctx, u, ip, "Login successful: "+u.UserName); err != nil {
		return nil, nil, err
	}

	slog.Info("User logged in", "id", u.ID, "ip", ip)
	res := &user.Session{
		Token:     row.ID,
		UserID:    u.ID,
		IPAddress: ip,
		LastSeen:  now,
	}
	return res, u, nil
}

// Logout closes a session. Unknown tokens are ignored.
func (m *manager) Logout(ctx context.Context, token string) error {
	gdb, err := m.db(ctx)
	if err != nil {
		return err
	}

	var row schema.Session
	err = gdb.Where("session_id = ?", token).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return SessionError(err)
	}

	err = gdb.Where("session_id = ?", token).Delete(&schema.Session{}).Error
	if err != nil {
		return SessionError(err)
	}

	u, err := m.Find(ctx, row.UserID)
	if err != nil || u == nil {
		return err
	}
	return m.logAuth(ctx, u, row.IPAddress, "Logout: "+u.UserName)
}

// FindBySession returns the user of a live session and marks the session
// as seen. Expired sessions are removed.
func (m *manager) FindBySession(
	ctx context.Context,
	token string,
) (*user.User, error) {
	if token == "" {
		return nil, nil
	}
	gdb, err := m.db(ctx)
	if err != nil {
		return nil, err
	}

	var row schema.Session
	err = gdb.Where("session_id = ?", token).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, SessionError(err)
	}

	now := m.now().UTC()
	q := gdb.Model(&schema.Session{}).Where("session_id = ?", token)
	if now.Sub(row.SessionTime) > m.sessionTTL {
		if err = q.Delete(&schema.Session{}).Error; err != nil {
			return nil, SessionError(err)
		}
		return nil, nil
	}
	if err = q.Update("session_time", now).Error; err != nil {
		return nil, SessionError(err)
	}
	return m.Find(ctx, row.UserID)
}

// PurgeSessions removes sessions not seen for longer than olderThan.
func (m *manager) PurgeSessions(
	ctx context.Context,
	olderThan time.Duration,
) (int64, error) {
	gdb, err := m.db(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := m.now().UTC().Add(-olderThan)
	res := gdb.Where("session_time < ?", cutoff).Delete(&schema.Session{})
	if res.Error != nil {
		return 0, SessionError(res.Error)
	}
	if res.RowsAffected > 0 {
		slog.Info("Sessions purged", "count", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

func (m *manager) logAuth(
	ctx context.Context,
	u *user.User,
	ip, msg string,
) error {
	gdb, err := m.db(ctx)
	if err != nil {
		return err
	}
	row := schema.Log{
		LogTime:    m.now().UTC(),
		LogType:    schema.LogAuth,
		LogMessage: msg,
		IPAddress:  ip,
	}
	if !u.IsVisitor() {
		id := u.ID
		row.UserID = &id
	}
	if err := gdb.Create(&row).Error; err != nil {
		return SessionError(err)
	}
	return nil
}
