package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := ParseID("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-5", "1.5", "9999999999999999999999"} {
		id, err := ParseID(raw)
		assert.Error(t, err, raw)
		assert.Zero(t, id)
	}
}
