package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qa-sandbox/go-demo-user-api/internal/domains/users/domain"
	"github.com/qa-sandbox/go-demo-user-api/internal/domains/users/ports"
)

func TestNewRepositoryHoldsSeedRecords(t *testing.T) {
	repo := NewRepository()
	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, int64(1), users[0].ID)
	require.Equal(t, "george.bluth@reqres.in", users[0].Email)
	require.Equal(t, int64(2), users[1].ID)
	require.Equal(t, "janet.weaver@reqres.in", users[1].Email)
	require.Empty(t, users[0].Job)
}

func TestAppendAssignsIncreasingIDs(t *testing.T) {
	repo := NewRepository()

	first, err := repo.Append(context.Background(), domain.User{Email: "a@reqres.in"})
	require.NoError(t, err)
	require.Equal(t, int64(3), first.ID)

	second, err := repo.Append(context.Background(), domain.User{Email: "b@reqres.in"})
	require.NoError(t, err)
	require.Equal(t, int64(4), second.ID)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4}, ids(users))
}

func TestAppendKeepsCounterAboveExplicitIDs(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Append(context.Background(), domain.User{ID: 10, Email: "x@reqres.in"})
	require.NoError(t, err)

	next, err := repo.Append(context.Background(), domain.User{Email: "y@reqres.in"})
	require.NoError(t, err)
	require.Equal(t, int64(11), next.ID)
}

func TestGetByID(t *testing.T) {
	repo := NewRepository()

	user, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "Janet", user.FirstName)

	_, err = repo.GetByID(context.Background(), 23)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteByIDRemovesAllMatches(t *testing.T) {
	repo := NewRepository()
	_, err := repo.Append(context.Background(), domain.User{ID: 7, Email: "dup@reqres.in"})
	require.NoError(t, err)
	_, err = repo.Append(context.Background(), domain.User{ID: 7, Email: "dup@reqres.in"})
	require.NoError(t, err)

	removed, err := repo.DeleteByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, ids(users))
}

func TestDeleteByIDMissing(t *testing.T) {
	repo := NewRepository()

	removed, err := repo.DeleteByID(context.Background(), 99)
	require.ErrorIs(t, err, ports.ErrNotFound)
	require.Zero(t, removed)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestListReturnsCopy(t *testing.T) {
	repo := NewRepository()
	users, err := repo.List(context.Background())
	require.NoError(t, err)
	users[0].FirstName = "Mutated"

	fresh, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "George", fresh.FirstName)
}

func TestResetRestoresSeeds(t *testing.T) {
	repo := NewRepository()
	_, err := repo.Append(context.Background(), domain.User{Email: "extra@reqres.in"})
	require.NoError(t, err)

	repo.Reset()

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, ids(users))

	next, err := repo.Append(context.Background(), domain.User{Email: "post-reset@reqres.in"})
	require.NoError(t, err)
	require.Equal(t, int64(3), next.ID)
}

func ids(users []domain.User) []int64 {
	result := make([]int64, 0, len(users))
	for _, u := range users {
		result = append(result, u.ID)
	}
	return result
}
