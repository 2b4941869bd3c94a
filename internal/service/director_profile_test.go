package service

import (
	"context"
	"testing"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectorFixture(t *testing.T, names ...string) (*DirectorProfileService, fakeDirectorStore, *fakeTx) {
	t.Helper()

	store := fakeDirectorStore{memStore: newMemStore[model.DirectorProfile]()}
	for i, name := range names {
		require.NoError(t, store.Create(context.Background(), &model.DirectorProfile{
			Order:     i + 1,
			BeginYear: 2000 + i,
			EndYear:   2001 + i,
			Name:      name,
		}))
	}
	tx := &fakeTx{}
	svc := NewDirectorProfileService(store, tx, &fakeStorage{})
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return svc, store, tx
}

// orders memetakan nama profil ke order-nya.
func orders(store fakeDirectorStore) map[string]int {
	out := map[string]int{}
	for _, p := range store.all() {
		out[p.Name] = p.Order
	}
	return out
}

func TestDirectorProfile_CreateShiftsExisting(t *testing.T) {
	svc, store, tx := newDirectorFixture(t, "A", "B", "C")

	created, err := svc.Create(context.Background(), &dto.DirectorProfileRequest{
		Order:     ptr(2),
		BeginYear: 2010,
		Name:      "D",
		Detail:    "<p>profil</p>",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"A": 1, "D": 2, "B": 3, "C": 4}, orders(store))
	assert.Equal(t, 2026, created.EndYear)
	assert.Equal(t, 1, tx.calls)
}

func TestDirectorProfile_CreateAtEndDoesNotShift(t *testing.T) {
	svc, store, _ := newDirectorFixture(t, "A", "B")

	_, err := svc.Create(context.Background(), &dto.DirectorProfileRequest{
		Order: ptr(5), BeginYear: 2010, EndYear: ptr(2012), Name: "Z", Detail: "x",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"A": 1, "B": 2, "Z": 5}, orders(store))
}

func TestDirectorProfile_CreateAtOrderZero(t *testing.T) {
	svc, store, _ := newDirectorFixture(t, "A", "B")

	_, err := svc.Create(context.Background(), &dto.DirectorProfileRequest{
		Order: ptr(0), BeginYear: 1995, Name: "Z", Detail: "x",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Z": 0, "A": 1, "B": 2}, orders(store))
}

func TestDirectorProfile_UpdateMovesRow(t *testing.T) {
	tests := []struct {
		name   string
		move   string
		target int
		want   map[string]int
	}{
		{"last to first", "C", 1, map[string]int{"C": 1, "A": 2, "B": 3}},
		{"first to middle leaves gap", "A", 2, map[string]int{"A": 2, "B": 3, "C": 4}},
		{"same order", "B", 2, map[string]int{"A": 1, "B": 2, "C": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := newDirectorFixture(t, "A", "B", "C")

			var id uint
			for _, p := range store.all() {
				if p.Name == tt.move {
					id = p.ID
				}
			}

			_, err := svc.Update(context.Background(), id, &dto.UpdateDirectorProfileRequest{Order: ptr(tt.target)}, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.want, orders(store))
		})
	}
}

func TestDirectorProfile_UpdateDefaultsEndYear(t *testing.T) {
	svc, store, _ := newDirectorFixture(t, "A")
	id := store.all()[0].ID

	updated, err := svc.Update(context.Background(), id, &dto.UpdateDirectorProfileRequest{Name: ptr("A2")}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2026, updated.EndYear)
	assert.Equal(t, "A2", updated.Name)

	updated, err = svc.Update(context.Background(), id, &dto.UpdateDirectorProfileRequest{EndYear: ptr(2020)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2020, updated.EndYear)
}

func TestDirectorProfile_NotFound(t *testing.T) {
	svc, _, _ := newDirectorFixture(t)

	_, err := svc.Update(context.Background(), 99, &dto.UpdateDirectorProfileRequest{}, nil)
	require.Error(t, err)
	assert.Equal(t, "Profil direktur tidak ditemukan.", err.Error())
}
