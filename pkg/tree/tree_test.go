package tree_test

import (
	"strings"
	"testing"

	"github.com/gnames/gnkin/pkg/tree"
	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		res  bool
	}{
		{"royals", true},
		{"smith-family_1.ged", true},
		{"Åström", true},
		{"", false},
		{"with space", false},
		{"a/b", false},
		{strings.Repeat("a", 256), false},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, tree.ValidName(v.name), v.name)
	}
}
