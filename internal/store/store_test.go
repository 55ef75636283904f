package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatpump_check/internal/model"
)

var ctx = context.Background()

func overrides() []model.Intervention {
	return []model.Intervention{
		{ID: "window_replacement", CostMin: 9000, CostMax: 18000},
		{ID: "hydraulic_balancing", CostMin: 700, CostMax: 1100},
	}
}

func TestStore_PutAndGet(t *testing.T) {
	s := New()
	require.NoError(t, s.Put(ctx, "Alice", overrides()))

	got, err := s.Get(ctx, " alice ")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hydraulic_balancing", got[0].ID, "sorted by ID")
	assert.Equal(t, []string{"alice"}, s.Users())
}

func TestStore_GetMissing(t *testing.T) {
	_, err := New().Get(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	in := overrides()
	require.NoError(t, s.Put(ctx, "alice", in))
	in[0].CostMin = 1

	got, _ := s.Get(ctx, "alice")
	got[0].CostMin = 2

	again, _ := s.Get(ctx, "alice")
	assert.Equal(t, 700.0, again[0].CostMin)
	assert.Equal(t, 9000.0, again[1].CostMin)
}

func TestStore_EmptyOverridesAreStored(t *testing.T) {
	s := New()
	require.NoError(t, s.Put(ctx, "carol", nil))

	got, err := s.Get(ctx, "carol")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_RejectsEmptyUser(t *testing.T) {
	assert.Error(t, New().Put(ctx, "  ", overrides()))
}

func TestStore_Delete(t *testing.T) {
	s := New()
	require.NoError(t, s.Put(ctx, "alice", overrides()))
	require.NoError(t, s.Delete(ctx, "alice"))
	assert.ErrorIs(t, s.Delete(ctx, "alice"), ErrNotFound)

	_, err := s.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]model.Intervention, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Put(context.Context, string, []model.Intervention) error {
	return errors.New("connection refused")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

func TestResolve(t *testing.T) {
	s := New()
	require.NoError(t, s.Put(ctx, "alice", overrides()))

	got, err := Resolve(ctx, s, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = Resolve(ctx, s, "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Resolve(ctx, nil, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Resolve(ctx, s, "")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = Resolve(ctx, failingStore{}, "alice")
	assert.Error(t, err)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = s.Put(ctx, "alice", overrides())
				_, _ = s.Get(ctx, "alice")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	got, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
