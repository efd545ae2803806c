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

func TestSharedTripEndpoints_PublishAndLike(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ana := testutil.CreateUser(t, env.db, "ana")
	luis := testutil.CreateUser(t, env.db, "luis")
	trip := testutil.CreateTrip(t, env.db, ana.ID, "Lisboa")
	tripPath := "/api/viaje_compartido/" + itoa(trip.ID)

	var published struct {
		Published bool `json:"publicado"`
	}
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, tripPath+"/esta_publicado/", luis.ID, nil, &published))
	assert.False(t, published.Published)

	assert.Equal(t, http.StatusForbidden,
		env.call(t, http.MethodPost, tripPath+"/publicar/", luis.ID, PublishRequest{Comment: "mine"}, nil))

	var st models.SharedTrip
	require.Equal(t, http.StatusCreated,
		env.call(t, http.MethodPost, tripPath+"/publicar/", ana.ID, PublishRequest{Comment: "  gran viaje  "}, &st))
	assert.Equal(t, trip.ID, st.TripID)
	assert.Equal(t, ana.ID, st.PublisherID)
	assert.Equal(t, "gran viaje", st.Comment)

	assert.Equal(t, http.StatusConflict,
		env.call(t, http.MethodPost, tripPath+"/publicar/", ana.ID, PublishRequest{}, nil))

	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, tripPath+"/esta_publicado/", luis.ID, nil, &published))
	assert.True(t, published.Published)

	sharedPath := "/api/viaje_compartido/" + itoa(st.ID)
	var like models.LikeState
	require.Equal(t, http.StatusOK, env.call(t, http.MethodPost, sharedPath+"/like/", luis.ID, nil, &like))
	assert.Equal(t, models.LikeState{SharedTripID: st.ID, LikesCount: 1, ViewerHasLiked: true}, like)
	require.Equal(t, http.StatusOK, env.call(t, http.MethodPost, sharedPath+"/like/", luis.ID, nil, &like))
	assert.Equal(t, int64(1), like.LikesCount)

	var item models.FeedItem
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, sharedPath+"/", luis.ID, nil, &item))
	assert.Equal(t, "Lisboa", item.Trip.Name)
	assert.Equal(t, "ana", item.Publisher.Username)
	assert.Equal(t, int64(1), item.LikesCount)
	assert.True(t, item.ViewerHasLiked)

	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, sharedPath+"/", ana.ID, nil, &item))
	assert.False(t, item.ViewerHasLiked)

	require.Equal(t, http.StatusOK, env.call(t, http.MethodPost, sharedPath+"/unlike/", luis.ID, nil, &like))
	assert.Equal(t, int64(0), like.LikesCount)
	assert.False(t, like.ViewerHasLiked)
	require.Equal(t, http.StatusOK, env.call(t, http.MethodPost, sharedPath+"/unlike/", luis.ID, nil, &like))
	assert.Equal(t, int64(0), like.LikesCount)

	var byPublisher []models.FeedItem
	require.Equal(t, http.StatusOK,
		env.call(t, http.MethodGet, "/api/viaje_compartido/?publicado_por="+itoa(ana.ID), luis.ID, nil, &byPublisher))
	require.Len(t, byPublisher, 1)
	assert.Equal(t, st.ID, byPublisher[0].ID)
}

func TestSharedTripEndpoints_UnpublishRemovesLikes(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ana := testutil.CreateUser(t, env.db, "ana")
	luis := testutil.CreateUser(t, env.db, "luis")
	trip := testutil.CreateTrip(t, env.db, ana.ID, "Roma")
	st := testutil.ShareTrip(t, env.db, trip, time.Now(), 0)
	tripPath := "/api/viaje_compartido/" + itoa(trip.ID)
	sharedPath := "/api/viaje_compartido/" + itoa(st.ID)

	require.Equal(t, http.StatusOK, env.call(t, http.MethodPost, sharedPath+"/like/", luis.ID, nil, nil))

	assert.Equal(t, http.StatusNotFound, env.call(t, http.MethodPost, tripPath+"/despublicar/", luis.ID, nil, nil))
	assert.Equal(t, http.StatusNoContent, env.call(t, http.MethodPost, tripPath+"/despublicar/", ana.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, env.call(t, http.MethodPost, tripPath+"/despublicar/", ana.ID, nil, nil))

	var likes int64
	require.NoError(t, env.db.Model(&models.Like{}).Where("shared_trip_id = ?", st.ID).Count(&likes).Error)
	assert.Zero(t, likes)

	assert.Equal(t, http.StatusNotFound, env.call(t, http.MethodPost, sharedPath+"/like/", luis.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, env.call(t, http.MethodGet, sharedPath+"/", luis.ID, nil, nil))
}

func TestSharedTripEndpoints_Validation(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ana := testutil.CreateUser(t, env.db, "ana")

	tests := []struct {
		name     string
		method   string
		path     string
		expected int
	}{
		{"PublishUnknownTrip", http.MethodPost, "/api/viaje_compartido/9999/publicar/", http.StatusNotFound},
		{"PublishBadTripID", http.MethodPost, "/api/viaje_compartido/abc/publicar/", http.StatusBadRequest},
		{"LikeUnknown", http.MethodPost, "/api/viaje_compartido/9999/like/", http.StatusNotFound},
		{"DetailUnknown", http.MethodGet, "/api/viaje_compartido/9999/", http.StatusNotFound},
		{"BadPublisherFilter", http.MethodGet, "/api/viaje_compartido/?publicado_por=x", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, env.call(t, tt.method, tt.path, ana.ID, nil, nil))
		})
	}
}
