package server

import (
	"net/http"
	"testing"
	"time"

	"travelshare/internal/models"
	"travelshare/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedItemIDs(items []models.FeedItem) []uint {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestFeedEndpoints(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	viewer := testutil.CreateUser(t, env.db, "viewer")
	followed := testutil.CreateUser(t, env.db, "followed")
	stranger := testutil.CreateUser(t, env.db, "stranger")
	testutil.Follow(t, env.db, viewer.ID, followed.ID)

	now := time.Now()
	fresh := testutil.ShareTrip(t, env.db, testutil.CreateTrip(t, env.db, followed.ID, "Oporto"), now.Add(-time.Hour), 2)
	older := testutil.ShareTrip(t, env.db, testutil.CreateTrip(t, env.db, followed.ID, "Sevilla"), now.Add(-48*time.Hour), 9)
	foreign := testutil.ShareTrip(t, env.db, testutil.CreateTrip(t, env.db, stranger.ID, "Cusco"), now.Add(-2*time.Hour), 5)
	stale := testutil.ShareTrip(t, env.db, testutil.CreateTrip(t, env.db, stranger.ID, "Quito"), now.Add(-40*24*time.Hour), 100)

	t.Run("Following", func(t *testing.T) {
		var items []models.FeedItem
		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/viaje_compartido/siguiendo/", viewer.ID, nil, &items))
		assert.Equal(t, []uint{fresh.ID, older.ID}, feedItemIDs(items))
		assert.Equal(t, "followed", items[0].Publisher.Username)
		assert.Equal(t, "Oporto", items[0].Trip.Name)
	})

	t.Run("PopularSkipsOldTrips", func(t *testing.T) {
		var items []models.FeedItem
		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/viaje_compartido/populares/", viewer.ID, nil, &items))
		assert.Equal(t, []uint{older.ID, foreign.ID, fresh.ID}, feedItemIDs(items))
	})

	t.Run("Recent", func(t *testing.T) {
		var items []models.FeedItem
		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/viaje_compartido/recientes/", viewer.ID, nil, &items))
		assert.Equal(t, []uint{fresh.ID, foreign.ID, older.ID, stale.ID}, feedItemIDs(items))
	})

	t.Run("RecentByPublisher", func(t *testing.T) {
		var items []models.FeedItem
		require.Equal(t, http.StatusOK,
			env.call(t, http.MethodGet, "/api/viaje_compartido/recientes/?publicado_por="+itoa(stranger.ID), viewer.ID, nil, &items))
		assert.Equal(t, []uint{foreign.ID, stale.ID}, feedItemIDs(items))
	})

	t.Run("RecentPaginated", func(t *testing.T) {
		var items []models.FeedItem
		require.Equal(t, http.StatusOK,
			env.call(t, http.MethodGet, "/api/viaje_compartido/recientes/?limit=1&offset=1", viewer.ID, nil, &items))
		assert.Equal(t, []uint{foreign.ID}, feedItemIDs(items))
	})

	t.Run("ViewerLikeState", func(t *testing.T) {
		require.Equal(t, http.StatusOK,
			env.call(t, http.MethodPost, "/api/viaje_compartido/"+itoa(fresh.ID)+"/like/", viewer.ID, nil, nil))

		var items []models.FeedItem
		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/viaje_compartido/siguiendo/", viewer.ID, nil, &items))
		require.Len(t, items, 2)
		assert.True(t, items[0].ViewerHasLiked)
		assert.Equal(t, int64(3), items[0].LikesCount)
		assert.False(t, items[1].ViewerHasLiked)
	})

	t.Run("BadPublisherFilter", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest,
			env.call(t, http.MethodGet, "/api/viaje_compartido/recientes/?publicado_por=0", viewer.ID, nil, nil))
	})

	t.Run("EmptyFeedIsEmptyArray", func(t *testing.T) {
		var items []models.FeedItem
		require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/viaje_compartido/siguiendo/", stranger.ID, nil, &items))
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
