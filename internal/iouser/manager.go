// Package iouser implements user.Manager on top of GORM. User rows are
// kept in a ristretto cache keyed by user ID, misses included, so that
// repeated lookups during a request do not hit the database.
package iouser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/db"
	"github.com/gnames/gnkin/pkg/schema"
	"github.com/gnames/gnkin/pkg/user"
	"gorm.io/gorm"
)

// entry is a cached lookup result. found is false for IDs known to be
// absent.
type entry struct {
	row   schema.User
	found bool
}

type manager struct {
	operator   db.Operator
	cost       int
	sessionTTL time.Duration
	cacheTTL   time.Duration
	cache      *ristretto.Cache[int, entry]

	// now is replaced in tests.
	now func() time.Time
}

// New creates a user.Manager that stores users in the database of op.
func New(op db.Operator, cfg *config.Config) (user.Manager, error) {
	maxUsers := int64(cfg.Cache.MaxUsers)
	cache, err := ristretto.NewCache(&ristretto.Config[int, entry]{
		NumCounters: maxUsers * 10,
		MaxCost:     maxUsers,
		BufferItems: 64,

		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, CacheError(err)
	}

	res := &manager{
		operator:   op,
		cost:       cfg.Auth.PasswordCost,
		sessionTTL: time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute,
		cacheTTL:   time.Duration(cfg.Cache.UserTTLSeconds) * time.Second,
		cache:      cache,
		now:        time.Now,
	}
	return res, nil
}

// Close releases the identity cache.
func (m *manager) Close() {
	m.cache.Close()
}

func (m *manager) db(ctx context.Context) (*gorm.DB, error) {
	gdb := m.operator.DB()
	if gdb == nil {
		return nil, NotConnectedError()
	}
	return gdb.WithContext(ctx), nil
}

// remember caches a lookup result. Wait makes the entry visible to the
// next Get and orders it before any later Del.
func (m *manager) remember(id int, row *schema.User) {
	e := entry{}
	if row != nil {
		e = entry{row: *row, found: true}
	}
	m.cache.SetWithTTL(id, e, 1, m.cacheTTL)
	m.cache.Wait()
}

func (m *manager) forget(id int) {
	m.cache.Del(id)
}

func toUser(row schema.User) *user.User {
	return user.New(row.ID, row.UserName, row.RealName, row.Email)
}

// first runs a single-row query. It returns nil when nothing matches.
func first(q *gorm.DB) (*schema.User, error) {
	var row schema.User
	err := q.Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// isDuplicate recognizes unique index violations of both engines.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// checkUnique returns user.ErrDuplicate when a user other than id
// already has userName or email. Empty values are not checked.
func checkUnique(tx *gorm.DB, id int, userName, email string) error {
	q := tx.Model(&schema.User{}).Where("user_id <> ?", id)
	switch {
	case userName != "" && email != "":
		q = q.Where("user_name = ? OR email = ?", userName, email)
	case userName != "":
		q = q.Where("user_name = ?", userName)
	default:
		q = q.Where("email = ?", email)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return duplicate(userName, email)
	}
	return nil
}

func duplicate(values ...string) error {
	var vals []string
	for _, v := range values {
		if v != "" {
			vals = append(vals, v)
		}
	}
	return fmt.Errorf("%w: %s", user.ErrDuplicate, strings.Join(vals, ", "))
}
