// Package iotree implements tree.Manager on top of GORM.
package iotree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gnkin/pkg/db"
	"github.com/gnames/gnkin/pkg/schema"
	"github.com/gnames/gnkin/pkg/surname"
	"github.com/gnames/gnkin/pkg/tree"
	"github.com/gnames/gnuuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type manager struct {
	operator db.Operator
}

// New creates a tree.Manager that stores trees in the database of op.
func New(op db.Operator) tree.Manager {
	return &manager{operator: op}
}

func (m *manager) db(ctx context.Context) (*gorm.DB, error) {
	gdb := m.operator.DB()
	if gdb == nil {
		return nil, NotConnectedError()
	}
	return gdb.WithContext(ctx), nil
}

func toTree(row schema.Tree) *tree.Tree {
	return &tree.Tree{
		ID:    row.ID,
		Name:  row.Name,
		Title: row.Title,
		UUID:  row.UUID,
	}
}

// Create adds a tree with a UUID v5 generated from its name.
func (m *manager) Create(
	ctx context.Context,
	name, title string,
) (*tree.Tree, error) {
	return m.CreateWithSettings(ctx, name, title, nil)
}

// CreateWithSettings adds a tree and its settings in one transaction.
// Empty values are skipped.
func (m *manager) CreateWithSettings(
	ctx context.Context,
	name, title string,
	settings map[string]string,
) (*tree.Tree, error) {
	settings, err := normalizeSettings(settings)
	if err != nil {
		return nil, err
	}
	if !tree.ValidName(name) {
		return nil, fmt.Errorf("%w: %q", tree.ErrInvalidName, name)
	}
	if title == "" {
		title = name
	}
	gdb, err := m.db(ctx)
	if err != nil {
		return nil, err
	}

	row := schema.Tree{
		Name:  name,
		Title: title,
		UUID:  gnuuid.New(name).String(),
	}
	err = gdb.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&schema.Tree{}).
			Where("tree_name = ?", name).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", tree.ErrDuplicate, name)
		}
		if err = tx.Create(&row).Error; err != nil {
			return err
		}
		for k, v := range settings {
			s := schema.TreeSetting{TreeID: row.ID, SettingName: k, SettingValue: v}
			if err = tx.Create(&s).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, tree.ErrDuplicate) {
		return nil, err
	}
	if err != nil {
		return nil, CreateError(name, err)
	}

	slog.Info("Tree created", "id", row.ID, "name", name, "uuid", row.UUID)
	return toTree(row), nil
}

// normalizeSettings drops empty values and checks the surname tradition.
func normalizeSettings(settings map[string]string) (map[string]string, error) {
	res := make(map[string]string, len(settings))
	for k, v := range settings {
		if v == "" {
			continue
		}
		if k == tree.SettingSurnameTradition {
			v = strings.ToLower(strings.TrimSpace(v))
			if _, err := surname.New(v); err != nil {
				return nil, err
			}
		}
		res[k] = v
	}
	return res, nil
}

// All returns every tree ordered by title.
func (m *manager) All(ctx context.Context) ([]*tree.Tree, error) {
	gdb, err := m.db(ctx)
	if err != nil {
		return nil, err
	}

	var rows []schema.Tree
	if err = gdb.Order("title").Order("tree_id").Find(&rows).Error; err != nil {
		return nil, QueryError(err)
	}
	res := make([]*tree.Tree, len(rows))
	for i := range rows {
		res[i] = toTree(rows[i])
	}
	return res, nil
}

// Find returns the tree with the given ID or nil.
func (m *manager) Find(ctx context.Context, id int) (*tree.Tree, error) {
	return m.findBy(ctx, "tree_id = ?", id)
}

// FindByName returns the tree with the given name or nil.
func (m *manager) FindByName(ctx context.Context, name string) (*tree.Tree, error) {
	return m.findBy(ctx, "tree_name = ?", name)
}

func (m *manager) findBy(ctx context.Context, where string, arg any) (*tree.Tree, error) {
	gdb, err := m.db(ctx)
	if err != nil {
		return nil, err
	}

	var row schema.Tree
	err = gdb.Where(where, arg).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError(err)
	}
	return toTree(row), nil
}

// Setting returns a setting of a tree or def.
func (m *manager) Setting(
	ctx context.Context,
	treeID int,
	name, def string,
) (string, error) {
	gdb, err := m.db(ctx)
	if err != nil {
		return def, err
	}

	var row schema.TreeSetting
	err = gdb.Where("tree_id = ? AND setting_name = ?", treeID, name).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return def, SettingError(treeID, name, err)
	}
	return row.SettingValue, nil
}

// SetSetting stores a setting of a tree. An empty value removes it.
// The surname tradition must be a known one.
func (m *manager) SetSetting(
	ctx context.Context,
	treeID int,
	name, value string,
) error {
	if name == tree.SettingSurnameTradition && value != "" {
		value = strings.ToLower(strings.TrimSpace(value))
		if _, err := surname.New(value); err != nil {
			return err
		}
	}
	gdb, err := m.db(ctx)
	if err != nil {
		return err
	}

	if value == "" {
		err = gdb.Where("tree_id = ? AND setting_name = ?", treeID, name).
			Delete(&schema.TreeSetting{}).Error
	} else {
		row := schema.TreeSetting{
			TreeID:       treeID,
			SettingName:  name,
			SettingValue: value,
		}
		err = gdb.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tree_id"}, {Name: "setting_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
		}).Create(&row).Error
	}
	if err != nil {
		return SettingError(treeID, name, err)
	}
	return nil
}

// Tradition returns the surname tradition of a tree. Trees without a
// valid one use the paternal tradition.
func (m *manager) Tradition(ctx context.Context, treeID int) (string, error) {
	v, err := m.Setting(ctx, treeID, tree.SettingSurnameTradition, surname.Paternal)
	if err != nil {
		return surname.Paternal, err
	}
	if _, err := surname.New(v); err != nil {
		slog.Warn("Unknown surname tradition", "tree", treeID, "value", v)
		return surname.Paternal, nil
	}
	return v, nil
}
