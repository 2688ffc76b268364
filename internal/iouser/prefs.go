package iouser

import (
	"context"
	"errors"

	"github.com/gnames/gnkin/pkg/schema"
	"github.com/gnames/gnkin/pkg/user"
	"gorm.io/gorm"
)

// Preference returns a preference of u. All preferences of u are read
// by the first call.
func (m *manager) Preference(
	ctx context.Context,
	u *user.User,
	name, def string,
) (string, error) {
	if u == nil {
		return def, nil
	}
	return u.Preference(name, def, m.loader(ctx, u.ID))
}

func (m *manager) loader(ctx context.Context, id int) user.Loader {
	return func() (map[string]string, error) {
		gdb, err := m.db(ctx)
		if err != nil {
			return nil, err
		}

		var rows []schema.UserSetting
		err = gdb.Where("user_id = ?", id).Find(&rows).Error
		if err != nil {
			return nil, PreferenceError(id, "*", err)
		}
		res := make(map[string]string, len(rows))
		for _, v := range rows {
			res[v.SettingName] = v.SettingValue
		}
		return res, nil
	}
}

// SetPreference stores a preference of u unless u is the visitor or the
// value did not change.
func (m *manager) SetPreference(
	ctx context.Context,
	u *user.User,
	name, value string,
) error {
	if u.IsVisitor() {
		return nil
	}
	value = user.Truncate(value)

	old, err := m.Preference(ctx, u, name, "")
	if err != nil {
		return err
	}
	if old == value {
		return nil
	}

	gdb, err := m.db(ctx)
	if err != nil {
		return err
	}
	row := schema.UserSetting{
		UserID:       u.ID,
		SettingName:  name,
		SettingValue: value,
	}
	err = gdb.Clauses(upsert("user_id", "setting_name")).Create(&row).Error
	if err != nil {
		return PreferenceError(u.ID, name, err)
	}
	u.Remember(name, value)
	return nil
}

// TreeSetting returns a setting of u in a tree or def.
func (m *manager) TreeSetting(
	ctx context.Context,
	u *user.User,
	treeID int,
	name, def string,
) (string, error) {
	if u.IsVisitor() {
		return def, nil
	}
	gdb, err := m.db(ctx)
	if err != nil {
		return def, err
	}

	var row schema.UserTreeSetting
	err = gdb.
		Where("user_id = ? AND tree_id = ? AND setting_name = ?", u.ID, treeID, name).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return def, PreferenceError(u.ID, name, err)
	}
	return row.SettingValue, nil
}

// SetTreeSetting stores a setting of u in a tree. An empty value removes
// the setting.
func (m *manager) SetTreeSetting(
	ctx context.Context,
	u *user.User,
	treeID int,
	name, value string,
) error {
	if u.IsVisitor() {
		return nil
	}
	gdb, err := m.db(ctx)
	if err != nil {
		return err
	}

	value = user.Truncate(value)
	where := gdb.Where("user_id = ? AND tree_id = ? AND setting_name = ?",
		u.ID, treeID, name)
	if value == "" {
		err = where.Delete(&schema.UserTreeSetting{}).Error
	} else {
		row := schema.UserTreeSetting{
			UserID:       u.ID,
			TreeID:       treeID,
			SettingName:  name,
			SettingValue: value,
		}
		err = gdb.Clauses(upsert("user_id", "tree_id", "setting_name")).
			Create(&row).Error
	}
	if err != nil {
		return PreferenceError(u.ID, name, err)
	}
	return nil
}

// IsAdmin reports whether u administers the site.
func (m *manager) IsAdmin(ctx context.Context, u *user.User) (bool, error) {
	v, err := m.Preference(ctx, u, user.PrefCanAdmin, "")
	return v == "1", err
}

// Role returns the access level of u in a tree. Site administrators
// manage every tree.
func (m *manager) Role(
	ctx context.Context,
	u *user.User,
	treeID int,
) (user.Role, error) {
	if u.IsVisitor() {
		return user.RoleNone, nil
	}
	admin, err := m.IsAdmin(ctx, u)
	if err != nil {
		return user.RoleNone, err
	}
	if admin {
		return user.RoleAdmin, nil
	}

	v, err := m.TreeSetting(ctx, u, treeID, user.TreeCanEdit, "")
	if err != nil {
		return user.RoleNone, err
	}
	r, _ := user.ParseRole(v)
	return r, nil
}

// Approve marks the account as approved by an administrator.
func (m *manager) Approve(ctx context.Context, u *user.User) error {
	return m.SetPreference(ctx, u, user.PrefVerifiedByAdmin, "1")
}

// Verify marks the email address as confirmed.
func (m *manager) Verify(ctx context.Context, u *user.User) error {
	return m.SetPreference(ctx, u, user.PrefVerified, "1")
}
