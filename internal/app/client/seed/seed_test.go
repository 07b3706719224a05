package seed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	for _, filename := range []string{"users.json", "wallets.json", "plans.json", "transactions.json", "settings.json"} {
		raw, ok := Collection(filename)
		require.True(t, ok, filename)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(raw, &items), filename)
		assert.NotEmpty(t, items, filename)
	}
}

func TestCollectionUnknown(t *testing.T) {
	_, ok := Collection("nope.json")
	assert.False(t, ok)
}
