package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelshare/internal/cache"
	"travelshare/internal/models"
	"travelshare/internal/repository"
	"travelshare/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type followRepoStub struct {
	createFn        func(context.Context, *models.Follow) error
	deleteFn        func(context.Context, uint, uint) (bool, error)
	existsFn        func(context.Context, uint, uint) (bool, error)
	listFollowingFn func(context.Context, uint, models.Page) ([]models.User, error)
	listFollowersFn func(context.Context, uint, models.Page) ([]models.User, error)
	countsFn        func(context.Context, uint) (models.RelationCounts, error)
}

func (s *followRepoStub) Create(ctx context.Context, f *models.Follow) error {
	return s.createFn(ctx, f)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.deleteFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, userID uint, page models.Page) ([]models.User, error) {
	return s.listFollowingFn(ctx, userID, page)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint, page models.Page) ([]models.User, error) {
	return s.listFollowersFn(ctx, userID, page)
}
func (s *followRepoStub) Counts(ctx context.Context, userID uint) (models.RelationCounts, error) {
	return s.countsFn(ctx, userID)
}

type userRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.User, error)
	existsFn  func(context.Context, uint) (bool, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func failingUserRepo(t *testing.T) *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(context.Context, uint) (*models.User, error) {
			t.Fatal("unexpected user lookup")
			return nil, nil
		},
		existsFn: func(context.Context, uint) (bool, error) {
			t.Fatal("unexpected user lookup")
			return false, nil
		},
	}
}

func TestRelationService_FollowSelfFailsBeforeLookup(t *testing.T) {
	svc := NewRelationService(&followRepoStub{}, failingUserRepo(t), 0)

	_, err := svc.Follow(context.Background(), 42, 42)
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeValidation))
}

func TestRelationService_FollowUnknownUser(t *testing.T) {
	users := &userRepoStub{existsFn: func(context.Context, uint) (bool, error) { return false, nil }}
	svc := NewRelationService(&followRepoStub{}, users, 0)

	_, err := svc.Follow(context.Background(), 1, 2)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestRelationService_FollowRaceSurfacesConflict(t *testing.T) {
	users := &userRepoStub{existsFn: func(context.Context, uint) (bool, error) { return true, nil }}
	follows := &followRepoStub{
		existsFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		createFn: func(context.Context, *models.Follow) error {
			return models.NewConflictError("Already following this user")
		},
	}
	svc := NewRelationService(follows, users, 0)

	_, err := svc.Follow(context.Background(), 1, 2)
	assert.True(t, models.IsCode(err, models.CodeConflict))
}

func TestRelationService_RepositoryErrorPropagates(t *testing.T) {
	boom := models.NewInternalError(errors.New("db down"))
	follows := &followRepoStub{
		deleteFn: func(context.Context, uint, uint) (bool, error) { return false, boom },
	}
	svc := NewRelationService(follows, failingUserRepo(t), 0)

	err := svc.Unfollow(context.Background(), 1, 2)
	assert.ErrorIs(t, err, boom)
}

func newRelationService(t *testing.T) (*RelationService, *userTrio) {
	t.Helper()
	db := testutil.NewDB(t)
	u := &userTrio{
		ana:   testutil.CreateUser(t, db, "ana"),
		bruno: testutil.CreateUser(t, db, "bruno"),
		carla: testutil.CreateUser(t, db, "carla"),
	}
	svc := NewRelationService(repository.NewFollowRepository(db), repository.NewUserRepository(db), time.Minute)
	return svc, u
}

type userTrio struct {
	ana, bruno, carla models.User
}

func TestRelationService_FollowLifecycle(t *testing.T) {
	svc, u := newRelationService(t)
	ctx := context.Background()

	f, err := svc.Follow(ctx, u.ana.ID, u.bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, u.bruno.ID, f.FolloweeID)

	_, err = svc.Follow(ctx, u.ana.ID, u.bruno.ID)
	assert.True(t, models.IsCode(err, models.CodeConflict), "double follow")

	_, err = svc.Follow(ctx, u.ana.ID, 9999)
	assert.True(t, models.IsCode(err, models.CodeNotFound), "unknown followee")

	following, err := svc.IsFollowing(ctx, u.ana.ID, u.bruno.ID)
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, svc.Unfollow(ctx, u.ana.ID, u.bruno.ID))
	err = svc.Unfollow(ctx, u.ana.ID, u.bruno.ID)
	assert.True(t, models.IsCode(err, models.CodeNotFound), "unfollow twice")

	following, err = svc.IsFollowing(ctx, u.ana.ID, u.bruno.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestRelationService_RemoveFollowerMatchesUnfollow(t *testing.T) {
	svc, u := newRelationService(t)
	ctx := context.Background()

	_, err := svc.Follow(ctx, u.carla.ID, u.ana.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFollower(ctx, u.ana.ID, u.carla.ID))

	following, err := svc.IsFollowing(ctx, u.carla.ID, u.ana.ID)
	require.NoError(t, err)
	assert.False(t, following)

	err = svc.RemoveFollower(ctx, u.ana.ID, u.carla.ID)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestRelationService_MutualStatus(t *testing.T) {
	svc, u := newRelationService(t)
	ctx := context.Background()

	status, err := svc.MutualStatus(ctx, u.ana.ID, u.bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MutualStatus{}, status)

	_, err = svc.Follow(ctx, u.bruno.ID, u.ana.ID)
	require.NoError(t, err)

	status, err = svc.MutualStatus(ctx, u.ana.ID, u.bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MutualStatus{IFollow: false, FollowsMe: true}, status)

	_, err = svc.Follow(ctx, u.ana.ID, u.bruno.ID)
	require.NoError(t, err)

	status, err = svc.MutualStatus(ctx, u.ana.ID, u.bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MutualStatus{IFollow: true, FollowsMe: true}, status)
}

func TestRelationService_ListsAndProfileCard(t *testing.T) {
	svc, u := newRelationService(t)
	ctx := context.Background()

	_, err := svc.Follow(ctx, u.ana.ID, u.carla.ID)
	require.NoError(t, err)
	_, err = svc.Follow(ctx, u.ana.ID, u.bruno.ID)
	require.NoError(t, err)
	_, err = svc.Follow(ctx, u.bruno.ID, u.carla.ID)
	require.NoError(t, err)

	following, err := svc.ListFollowing(ctx, u.ana.ID, models.NewPage(0, 0))
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, "carla", following[0].Username)
	assert.Equal(t, "bruno", following[1].Username)

	followers, err := svc.ListFollowers(ctx, u.carla.ID, models.NewPage(0, 0))
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, "ana", followers[0].Username)

	card, err := svc.ProfileCard(ctx, u.carla.ID)
	require.NoError(t, err)
	assert.Equal(t, "carla", card.Username)
	assert.Equal(t, models.RelationCounts{Following: 0, Followers: 2}, card.RelationCounts)

	_, err = svc.ProfileCard(ctx, 9999)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestRelationService_CountsCacheInvalidatedOnMutation(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(cache.Close)

	svc, u := newRelationService(t)
	ctx := context.Background()

	counts, err := svc.Counts(ctx, u.bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationCounts{}, counts)
	assert.True(t, mr.Exists(cache.RelationCountsKey(u.bruno.ID)))

	_, err = svc.Follow(ctx, u.ana.ID, u.bruno.ID)
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.RelationCountsKey(u.bruno.ID)))

	counts, err = svc.Counts(ctx, u.bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationCounts{Followers: 1}, counts)

	require.NoError(t, svc.Unfollow(ctx, u.ana.ID, u.bruno.ID))
	counts, err = svc.Counts(ctx, u.bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationCounts{}, counts)
}
