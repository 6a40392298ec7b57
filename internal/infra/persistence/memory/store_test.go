package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanctuary/pkg/domain"
)

func TestStoreAddAssignsIDAndTimestamp(t *testing.T) {
	s := NewStore()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.nowFn = func() time.Time { return fixed }
	ctx := context.Background()

	rec, err := s.Add(ctx, domain.Record{Name: "Dolph", Category: domain.CategoryMammal})
	require.NoError(t, err)
	assert.Len(t, rec.ID, 32)
	assert.Equal(t, fixed, rec.AdmittedAt)

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestStoreReAddKeepsPosition(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, err := s.Add(ctx, domain.Record{ID: "a", Name: "Dolph"})
	require.NoError(t, err)
	_, err = s.Add(ctx, domain.Record{ID: "b", Name: "Rick"})
	require.NoError(t, err)
	_, err = s.Add(ctx, domain.Record{ID: first.ID, Name: "Dolphin"})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Dolphin", list[0].Name)
	assert.Equal(t, "Rick", list[1].Name)
}
