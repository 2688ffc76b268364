package iouser

import (
	"context"
	"fmt"

	"github.com/gnames/gnkin/pkg/schema"
	"github.com/gnames/gnkin/pkg/user"
	"gorm.io/gorm"
)

// Find returns the user with the given ID or nil.
func (m *manager) Find(ctx context.Context, id int) (*user.User, error) {
	if e, ok := m.cache.Get(id); ok {
		if !e.found {
			return nil, nil
		}
		return toUser(e.row), nil
	}

	gdb, err := m.db(ctx)
	if err != nil {
		return nil, err
	}
	row, err := first(gdb.Where("user_id = ?", id))
	if err != nil {
		return nil, QueryError("user", err)
	}
	m.remember(id, row)
	if row == nil {
		return nil, nil
	}
	return toUser(*row), nil
}

// FindByEmail returns the user with the given email or nil.
func (m *manager) FindByEmail(
	ctx context.Context,
	email string,
) (*user.User, error) {
	return m.findBy(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("email = ?", email)
	})
}

// FindByUserName returns the user with the given login name or nil.
func (m *manager) FindByUserName(
	ctx context.Context,
	userName string,
) (*user.User, error) {
	return m.findBy(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_name = ?", userName)
	})
}

// FindByIdentifier tries the user name first and the email second.
func (m *manager) FindByIdentifier(
	ctx context.Context,
	identifier string,
) (*user.User, error) {
	u, err := m.FindByUserName(ctx, identifier)
	if err != nil || u != nil {
		return u, err
	}
	return m.FindByEmail(ctx, identifier)
}

// FindByIndividual returns the user whose gedcomid setting in the tree
// is xref.
func (m *manager) FindByIndividual(
	ctx context.Context,
	treeID int,
	xref string,
) (*user.User, error) {
	return m.findBy(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id IN (?)",
			q.Session(&gorm.Session{NewDB: true}).
				Model(&schema.UserTreeSetting{}).
				Select("user_id").
				Where("tree_id = ? AND setting_name = ? AND setting_value = ?",
					treeID, user.TreeGedcomID, xref),
		)
	})
}

// FindLatestToRegister returns the user with the greatest registration
// timestamp. Users that never registered themselves come last.
func (m *manager) FindLatestToRegister(ctx context.Context) (*user.User, error) {
	return m.findBy(ctx, func(q *gorm.DB) *gorm.DB {
		return q.
			Joins("LEFT JOIN user_settings us ON us.user_id = users.user_id AND us.setting_name = ?",
				user.PrefRegTimestamp).
			Where("users.user_id > 0").
			Order("us.setting_value IS NULL").
			Order("CAST(us.setting_value AS BIGINT) DESC").
			Order("users.user_id DESC")
	})
}

func (m *manager) findBy(
	ctx context.Context,
	where func(*gorm.DB) *gorm.DB,
) (*user.User, error) {
	gdb, err := m.db(ctx)
	if err != nil {
		return nil, err
	}
	row, err := first(where(gdb.Model(&schema.User{})))
	if err != nil {
		return nil, QueryError("user", err)
	}
	if row == nil {
		return nil, nil
	}
	m.remember(row.ID, row)
	return toUser(*row), nil
}

// List returns the users selected by f, ordered by real name.
func (m *manager) List(ctx context.Context, f user.Filter) ([]*user.User, error) {
	gdb, err := m.db(ctx)
	if err != nil {
		return nil, err
	}

	ids := func(model any) *gorm.DB {
		return gdb.Session(&gorm.Session{NewDB: true}).
			Model(model).Select("user_id")
	}
	setting := func(name, value string) *gorm.DB {
		return ids(&schema.UserSetting{}).
			Where("setting_name = ? AND setting_value = ?", name, value)
	}
	treeRole := func(r user.Role) *gorm.DB {
		return ids(&schema.UserTreeSetting{}).
			Where("setting_name = ? AND setting_value = ?",
				user.TreeCanEdit, string(r))
	}

	q := gdb.Model(&schema.User{}).Where("user_id > 0")
	switch f {
	case user.FilterAll:
	case user.FilterAdministrators:
		q = q.Where("user_id IN (?)", setting(user.PrefCanAdmin, "1"))
	case user.FilterManagers:
		q = q.Where("user_id IN (?)", treeRole(user.RoleAdmin))
	case user.FilterModerators:
		q = q.Where("user_id IN (?)", treeRole(user.RoleAccept))
	case user.FilterUnapproved:
		q = q.Where("user_id IN (?)", setting(user.PrefVerifiedByAdmin, "0"))
	case user.FilterUnverified:
		q = q.Where("user_id IN (?)", setting(user.PrefVerified, "0"))
	case user.FilterLoggedIn:
		q = q.Where("user_id IN (?)", ids(&schema.Session{}))
	default:
		return nil, fmt.Errorf("%w: %s", user.ErrUnknownFilter, f)
	}

	var rows []schema.User
	err = q.Order("real_name").Order("user_id").Find(&rows).Error
	if err != nil {
		return nil, QueryError(string(f)+" users", err)
	}

	res := make([]*user.User, len(rows))
	for i := range rows {
		res[i] = toUser(rows[i])
	}
	return res, nil
}

// All returns every real account.
func (m *manager) All(ctx context.Context) ([]*user.User, error) {
	return m.List(ctx, user.FilterAll)
}

// Administrators returns users that can administer the site.
func (m *manager) Administrators(ctx context.Context) ([]*user.User, error) {
	return m.List(ctx, user.FilterAdministrators)
}

// Managers returns users that manage at least one tree.
func (m *manager) Managers(ctx context.Context) ([]*user.User, error) {
	return m.List(ctx, user.FilterManagers)
}

// Moderators returns users that accept changes in at least one tree.
func (m *manager) Moderators(ctx context.Context) ([]*user.User, error) {
	return m.List(ctx, user.FilterModerators)
}

// Unapproved returns users waiting for an administrator.
func (m *manager) Unapproved(ctx context.Context) ([]*user.User, error) {
	return m.List(ctx, user.FilterUnapproved)
}

// Unverified returns users that did not confirm their email.
func (m *manager) Unverified(ctx context.Context) ([]*user.User, error) {
	return m.List(ctx, user.FilterUnverified)
}

// AllLoggedIn returns users with at least one session.
func (m *manager) AllLoggedIn(ctx context.Context) ([]*user.User, error) {
	return m.List(ctx, user.FilterLoggedIn)
}
