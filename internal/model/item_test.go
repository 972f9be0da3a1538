package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entry    int32
		count    int32
		template *ItemTemplate
		wantErr  bool
	}{
		{name: "valid with template", entry: 25, count: 1, template: newSword()},
		{name: "valid without template", entry: 25, count: 20},
		{name: "zero entry", entry: 0, count: 1, wantErr: true},
		{name: "negative count", entry: 25, count: -1, wantErr: true},
		{name: "zero count", entry: 25, count: 0, wantErr: true},
		{name: "template mismatch", entry: 26, count: 1, template: newSword(), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item, err := NewItem(tt.entry, 7, tt.count, tt.template)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.entry, item.Entry())
			assert.Equal(t, int64(7), item.OwnerGUID())
			assert.Equal(t, tt.count, item.Count())
			assert.Zero(t, item.GUID())
			assert.False(t, item.InInventory())
		})
	}
}

func TestItem_SlotAndGUID(t *testing.T) {
	t.Parallel()

	item, err := NewItem(25, 7, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(-1), item.Slot())
	item.SetSlot(0)
	assert.True(t, item.InInventory())

	item.SetGUID(1234)
	assert.Equal(t, int64(1234), item.GUID())

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	item.SetCreatedAt(ts)
	assert.Equal(t, ts, item.CreatedAt())
}

func TestItem_Template(t *testing.T) {
	t.Parallel()

	item, err := NewItem(25, 0, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "item #25", item.Name())

	other := newSword().Clone(100000)
	assert.Error(t, item.SetTemplate(other))
	assert.Nil(t, item.Template())

	require.NoError(t, item.SetTemplate(newSword()))
	assert.Equal(t, "Worn Shortsword", item.Name())

	require.NoError(t, item.SetTemplate(nil))
	assert.Nil(t, item.Template())
}
