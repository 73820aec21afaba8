package model

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestNullTime_JSON(t *testing.T) {
	t.Run("invalid encodes as null", func(t *testing.T) {
		data, err := json.Marshal(NullTime{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("null decodes as invalid", func(t *testing.T) {
		nt := NewNullTime(time.Now())
		require.NoError(t, json.Unmarshal([]byte("null"), &nt))
		assert.False(t, nt.Valid)
	})

	t.Run("timestamp decodes as valid", func(t *testing.T) {
		var asset Asset
		require.NoError(t, json.Unmarshal([]byte(`{"ID":7,"Name":"Laptop","PurchasedAt":"2024-03-01T10:00:00Z"}`), &asset))
		assert.Equal(t, int64(7), asset.ID)
		assert.True(t, asset.PurchasedAt.Valid)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), asset.PurchasedAt.Time.UTC())
		assert.False(t, asset.DeletedAt.Valid)
	})
}
