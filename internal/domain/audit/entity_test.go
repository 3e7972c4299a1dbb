package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilterNormalized(t *testing.T) {
	t.Run("zero limit falls back to default", func(t *testing.T) {
		f := ListFilter{}.Normalized()
		assert.Equal(t, DefaultListLimit, f.Limit)
		assert.Equal(t, 0, f.Offset)
	})

	t.Run("oversized limit is capped", func(t *testing.T) {
		f := ListFilter{Limit: 5000}.Normalized()
		assert.Equal(t, MaxListLimit, f.Limit)
	})

	t.Run("negative offset is zeroed", func(t *testing.T) {
		f := ListFilter{Limit: 10, Offset: -3}.Normalized()
		assert.Equal(t, 10, f.Limit)
		assert.Equal(t, 0, f.Offset)
	})

	t.Run("in-range values pass through", func(t *testing.T) {
		f := ListFilter{Limit: 250, Offset: 40}.Normalized()
		assert.Equal(t, 250, f.Limit)
		assert.Equal(t, 40, f.Offset)
	})
}

func TestActionIsValid(t *testing.T) {
	assert.True(t, ActionCreate.IsValid())
	assert.True(t, ActionUpdate.IsValid())
	assert.True(t, ActionDelete.IsValid())
	assert.False(t, Action("create").IsValid())
	assert.False(t, Action("NONSENSE").IsValid())
	assert.False(t, Action("").IsValid())
}
