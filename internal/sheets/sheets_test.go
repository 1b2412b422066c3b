package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToStrings(t *testing.T) {
	row := []interface{}{"Alice", nil, 42, 1.5, true}
	assert.Equal(t, []string{"Alice", "", "42", "1.5", "true"}, toStrings(row))
}

func TestToStringsEmptyRow(t *testing.T) {
	assert.Empty(t, toStrings(nil))
}
