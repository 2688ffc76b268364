package iooptimize

import (
	"log/slog"

	"gorm.io/gorm"
)

// orphanQueries remove rows that refer to deleted users, trees or
// blocks. Block settings go after blocks.
var orphanQueries = []struct {
	table string
	where string
}{
	{"user_settings", "user_id NOT IN (SELECT user_id FROM users)"},
	{"user_tree_settings", "user_id NOT IN (SELECT user_id FROM users) " +
		"OR tree_id NOT IN (SELECT tree_id FROM trees)"},
	{"tree_settings", "tree_id NOT IN (SELECT tree_id FROM trees)"},
	{"blocks", "(user_id IS NOT NULL AND user_id NOT IN (SELECT user_id FROM users)) " +
		"OR (tree_id IS NOT NULL AND tree_id NOT IN (SELECT tree_id FROM trees))"},
	{"block_settings", "block_id NOT IN (SELECT block_id FROM blocks)"},
	{"messages", "user_id NOT IN (SELECT user_id FROM users)"},
	{"sessions", "user_id NOT IN (SELECT user_id FROM users)"},
}

// removeOrphans deletes orphaned records in one transaction and returns
// their number.
func removeOrphans(gdb *gorm.DB) (int64, error) {
	var res int64
	err := gdb.Transaction(func(tx *gorm.DB) error {
		for _, q := range orphanQueries {
			r := tx.Exec("DELETE FROM " + q.table + " WHERE " + q.where)
			if r.Error != nil {
				return OrphansError(q.table, r.Error)
			}
			if r.RowsAffected > 0 {
				slog.Info("Removed orphaned records",
					"table", q.table, "count", r.RowsAffected)
			}
			res += r.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return res, nil
}
