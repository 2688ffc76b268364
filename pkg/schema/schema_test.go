package schema_test

import (
	"testing"

	"github.com/gnames/gnkin/pkg/schema"
	"github.com/stretchr/testify/assert"
)

type tabler interface {
	TableName() string
}

func TestTableNames(t *testing.T) {
	tests := []struct {
		model tabler
		name  string
	}{
		{schema.User{}, "users"},
		{schema.UserSetting{}, "user_settings"},
		{schema.Tree{}, "trees"},
		{schema.TreeSetting{}, "tree_settings"},
		{schema.UserTreeSetting{}, "user_tree_settings"},
		{schema.Block{}, "blocks"},
		{schema.BlockSetting{}, "block_settings"},
		{schema.Log{}, "logs"},
		{schema.Change{}, "changes"},
		{schema.Message{}, "messages"},
		{schema.Session{}, "sessions"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.model.TableName())
	}
}

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 11)
	for _, m := range models {
		_, ok := m.(tabler)
		assert.True(t, ok, "%T should define TableName", m)
	}
}

func TestDefaultBlocks(t *testing.T) {
	blocks := schema.DefaultBlocks()
	assert.NotEmpty(t, blocks)

	orders := make(map[string]map[int]bool)
	for _, b := range blocks {
		if assert.NotNil(t, b.UserID) {
			assert.Equal(t, schema.TemplateUserID, *b.UserID)
		}
		assert.Nil(t, b.TreeID)
		assert.Contains(t, []string{schema.BlockMain, schema.BlockSide}, b.Location)
		assert.NotEmpty(t, b.ModuleName)

		if orders[b.Location] == nil {
			orders[b.Location] = make(map[int]bool)
		}
		assert.False(t, orders[b.Location][b.BlockOrder],
			"block order must be unique per location")
		orders[b.Location][b.BlockOrder] = true
	}
}
