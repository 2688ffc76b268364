package lifecycle_test

import (
	"testing"

	"github.com/gnames/gnkin/internal/iodb"
	"github.com/gnames/gnkin/internal/ioimport"
	"github.com/gnames/gnkin/internal/iooptimize"
	"github.com/gnames/gnkin/internal/ioschema"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestSchemaManagerContract ensures that the ioschema implementation
// satisfies the lifecycle.SchemaManager interface.
func TestSchemaManagerContract(t *testing.T) {
	var sm lifecycle.SchemaManager = ioschema.NewManager(iodb.NewOperator())
	assert.NotNil(t, sm)
}

// TestImporterContract ensures that the ioimport implementation
// satisfies the lifecycle.Importer interface.
func TestImporterContract(t *testing.T) {
	var im lifecycle.Importer = ioimport.New(iodb.NewOperator(), config.New())
	assert.NotNil(t, im)
}

// TestOptimizerContract ensures that the iooptimize implementation
// satisfies the lifecycle.Optimizer interface.
func TestOptimizerContract(t *testing.T) {
	var o lifecycle.Optimizer = iooptimize.New(iodb.NewOperator(), config.New())
	assert.NotNil(t, o)
}
