package iouser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gnames/gnkin/pkg/schema"
	"github.com/gnames/gnkin/pkg/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tree settings that point at a user and are cleared when it is deleted.
var treeUserSettings = []string{"CONTACT_USER_ID", "WEBMASTER_USER_ID"}

func (m *manager) hash(userName, password string) (string, error) {
	if len(password) > user.MaxPasswordLength {
		return "", fmt.Errorf("%w: %s", user.ErrPasswordTooLong, userName)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return "", PasswordHashError(userName, err)
	}
	return string(h), nil
}

// Create adds a user and gives it a copy of the default blocks.
func (m *manager) Create(
	ctx context.Context,
	userName, realName, email, password string,
) (*user.User, error) {
	return m.create(ctx, userName, realName, email, password, nil)
}

// CreateActive adds an account that can log in right away. Empty
// preference values are skipped.
func (m *manager) CreateActive(
	ctx context.Context,
	userName, realName, email, password string,
	prefs map[string]string,
) (*user.User, error) {
	all := map[string]string{
		user.PrefVerified:        "1",
		user.PrefVerifiedByAdmin: "1",
	}
	for k, v := range prefs {
		if v != "" {
			all[k] = v
		}
	}
	return m.create(ctx, userName, realName, email, password, all)
}

// Register creates an account that has to verify its email and wait for
// approval before it can log in.
func (m *manager) Register(
	ctx context.Context,
	userName, realName, email, password, language string,
) (*user.User, error) {
	prefs := map[string]string{
		user.PrefVerified:        "0",
		user.PrefVerifiedByAdmin: "0",
		user.PrefRegTimestamp:    strconv.FormatInt(m.now().Unix(), 10),
	}
	if language != "" {
		prefs[user.PrefLanguage] = language
	}
	return m.create(ctx, userName, realName, email, password, prefs)
}

func (m *manager) create(
	ctx context.Context,
	userName, realName, email, password string,
	prefs map[string]string,
) (*user.User, error) {
	gdb, err := m.db(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := m.hash(userName, password)
	if err != nil {
		return nil, err
	}

	row := schema.User{
		UserName: userName,
		RealName: realName,
		Email:    email,
		Password: hash,
	}
	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := checkUnique(tx, 0, userName, email); err != nil {
			return err
		}
		if err := tx.Create(&row).Error; err != nil {
			if isDuplicate(err) {
				return duplicate(userName, email)
			}
			return err
		}
		if err := CopyDefaultBlocks(tx, row.ID); err != nil {
			return err
		}
		for k, v := range prefs {
			s := schema.UserSetting{
				UserID:       row.ID,
				SettingName:  k,
				SettingValue: user.Truncate(v),
			}
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, user.ErrDuplicate) {
		return nil, err
	}
	if err != nil {
		return nil, CreateError(userName, err)
	}

	m.remember(row.ID, &row)
	slog.Info("User created", "id", row.ID, "user_name", userName)

	res := toUser(row)
	for k, v := range prefs {
		res.Remember(k, user.Truncate(v))
	}
	return res, nil
}

// CopyDefaultBlocks gives every user a copy of the home-page blocks of
// the template account.
func CopyDefaultBlocks(tx *gorm.DB, userIDs ...int) error {
	var tmpl []schema.Block
	err := tx.Where("user_id = ?", schema.TemplateUserID).
		Order("block_id").
		Find(&tmpl).Error
	if err != nil || len(tmpl) == 0 || len(userIDs) == 0 {
		return err
	}

	blocks := make([]schema.Block, 0, len(tmpl)*len(userIDs))
	for _, id := range userIDs {
		for _, b := range tmpl {
			uid := id
			blocks = append(blocks, schema.Block{
				UserID:     &uid,
				Location:   b.Location,
				BlockOrder: b.BlockOrder,
				ModuleName: b.ModuleName,
			})
		}
	}
	return tx.CreateInBatches(&blocks, 500).Error
}

// Delete removes a user and everything it owns. Log entries are kept
// without the user; pending and accepted changes pass to actingUserID.
func (m *manager) Delete(
	ctx context.Context,
	u *user.User,
	actingUserID int,
) error {
	if u.IsVisitor() {
		return user.ErrNotFound
	}
	gdb, err := m.db(ctx)
	if err != nil {
		return err
	}

	id := u.ID
	err = gdb.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&schema.Log{}).
			Where("user_id = ?", id).
			Update("user_id", nil).Error
		if err != nil {
			return err
		}

		err = tx.Where("user_id = ? AND status = ?", id, schema.ChangeRejected).
			Delete(&schema.Change{}).Error
		if err != nil {
			return err
		}
		err = tx.Model(&schema.Change{}).
			Where("user_id = ?", id).
			Update("user_id", actingUserID).Error
		if err != nil {
			return err
		}

		blocks := tx.Session(&gorm.Session{NewDB: true}).
			Model(&schema.Block{}).
			Select("block_id").
			Where("user_id = ?", id)
		err = tx.Where("block_id IN (?)", blocks).
			Delete(&schema.BlockSetting{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("setting_name IN ? AND setting_value = ?",
			treeUserSettings, strconv.Itoa(id)).
			Delete(&schema.TreeSetting{}).Error
		if err != nil {
			return err
		}

		for _, model := range []any{
			&schema.Block{},
			&schema.UserTreeSetting{},
			&schema.UserSetting{},
			&schema.Message{},
			&schema.Session{},
		} {
			if err := tx.Where("user_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		res := tx.Where("user_id = ?", id).Delete(&schema.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return user.ErrNotFound
		}
		return nil
	})
	m.forget(id)

	if errors.Is(err, user.ErrNotFound) {
		return err
	}
	if err != nil {
		return DeleteError(id, err)
	}

	slog.Info("User deleted", "id", id, "by", actingUserID)
	return nil
}

// SetUserName changes the login name. Nothing is written when the name
// is unchanged.
func (m *manager) SetUserName(ctx context.Context, u *user.User, userName string) error {
	if u.UserName == userName {
		return nil
	}
	err := m.update(ctx, u, "user_name", userName, func(tx *gorm.DB) error {
		return checkUnique(tx, u.ID, userName, "")
	})
	if err != nil {
		return err
	}
	u.UserName = userName
	return nil
}

// SetRealName changes the display name.
func (m *manager) SetRealName(ctx context.Context, u *user.User, realName string) error {
	if u.RealName == realName {
		return nil
	}
	if err := m.update(ctx, u, "real_name", realName, nil); err != nil {
		return err
	}
	u.RealName = realName
	return nil
}

// SetEmail changes the email address.
func (m *manager) SetEmail(ctx context.Context, u *user.User, email string) error {
	if u.Email == email {
		return nil
	}
	err := m.update(ctx, u, "email", email, func(tx *gorm.DB) error {
		return checkUnique(tx, u.ID, "", email)
	})
	if err != nil {
		return err
	}
	u.Email = email
	return nil
}

// SetPassword stores a new hash of password.
func (m *manager) SetPassword(ctx context.Context, u *user.User, password string) error {
	hash, err := m.hash(u.UserName, password)
	if err != nil {
		return err
	}
	return m.update(ctx, u, "password", hash, nil)
}

// update writes one column of the user row and drops the cached row.
// check runs inside the transaction before the write.
func (m *manager) update(
	ctx context.Context,
	u *user.User,
	column, value string,
	check func(*gorm.DB) error,
) error {
	if u.IsVisitor() {
		return user.ErrNotFound
	}
	gdb, err := m.db(ctx)
	if err != nil {
		return err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		if check != nil {
			if err := check(tx); err != nil {
				return err
			}
		}
		res := tx.Model(&schema.User{}).
			Where("user_id = ?", u.ID).
			Update(column, value)
		if res.Error != nil {
			if isDuplicate(res.Error) {
				return duplicate(value)
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return user.ErrNotFound
		}
		return nil
	})
	m.forget(u.ID)

	if errors.Is(err, user.ErrDuplicate) || errors.Is(err, user.ErrNotFound) {
		return err
	}
	if err != nil {
		return UpdateError(u.ID, column, err)
	}
	return nil
}

// CheckPassword compares password with the stored hash. A matching
// password hashed with another cost is rehashed.
func (m *manager) CheckPassword(
	ctx context.Context,
	u *user.User,
	password string,
) (bool, error) {
	if u.IsVisitor() {
		return false, nil
	}
	gdb, err := m.db(ctx)
	if err != nil {
		return false, err
	}

	var hashes []string
	err = gdb.Model(&schema.User{}).
		Where("user_id = ?", u.ID).
		Pluck("password", &hashes).Error
	if err != nil {
		return false, QueryError("password", err)
	}
	if len(hashes) == 0 {
		return false, nil
	}

	hash := hashes[0]
	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		return false, nil
	}

	if cost, err := bcrypt.Cost([]byte(hash)); err == nil && cost != m.cost {
		if err := m.SetPassword(ctx, u, password); err != nil {
			return true, err
		}
		slog.Debug("Password rehashed", "id", u.ID, "from", cost, "to", m.cost)
	}
	return true, nil
}

// upsert is the conflict clause shared by all key/value setting tables.
func upsert(keys ...string) clause.OnConflict {
	cols := make([]clause.Column, len(keys))
	for i, k := range keys {
		cols[i] = clause.Column{Name: k}
	}
	return clause.OnConflict{
		Columns:   cols,
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}
}
