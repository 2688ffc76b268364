package db_test

import (
	"testing"

	"github.com/gnames/gnkin/internal/iodb"
	"github.com/gnames/gnkin/pkg/db"
)

// TestOperatorImplementsInterface verifies that the iodb operator
// implements the db.Operator interface.
func TestOperatorImplementsInterface(t *testing.T) {
	var _ db.Operator = iodb.NewOperator()
}
