package server

import (
	"net/http"
	"testing"

	"travelshare/internal/models"
	"travelshare/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationEndpoints_Lifecycle(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ana := testutil.CreateUser(t, env.db, "ana")
	luis := testutil.CreateUser(t, env.db, "luis")

	var follow models.Follow
	require.Equal(t, http.StatusCreated,
		env.call(t, http.MethodPost, "/api/relation/", ana.ID, FollowRequest{FolloweeID: luis.ID}, &follow))
	assert.Equal(t, ana.ID, follow.FollowerID)
	assert.Equal(t, luis.ID, follow.FolloweeID)

	var errResp models.ErrorResponse
	assert.Equal(t, http.StatusConflict,
		env.call(t, http.MethodPost, "/api/relation/", ana.ID, FollowRequest{FolloweeID: luis.ID}, &errResp))
	assert.Equal(t, models.CodeConflict, errResp.Code)

	var state struct {
		Following bool `json:"siguiendo"`
	}
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relation/"+itoa(luis.ID)+"/estado/", ana.ID, nil, &state))
	assert.True(t, state.Following)
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relation/"+itoa(ana.ID)+"/estado/", luis.ID, nil, &state))
	assert.False(t, state.Following)

	// Follow back and check both directions.
	require.Equal(t, http.StatusCreated,
		env.call(t, http.MethodPost, "/api/relacion/", luis.ID, FollowRequest{FolloweeID: ana.ID}, nil))
	var mutual models.MutualStatus
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relation/estado_mutuo/"+itoa(luis.ID)+"/", ana.ID, nil, &mutual))
	assert.Equal(t, models.MutualStatus{IFollow: true, FollowsMe: true}, mutual)

	var counts models.RelationCounts
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relation/contador/", ana.ID, nil, &counts))
	assert.Equal(t, models.RelationCounts{Following: 1, Followers: 1}, counts)

	// The mobile client reads these exact keys from /relacion/contador/.
	var rawCounts map[string]int64
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relacion/contador/", ana.ID, nil, &rawCounts))
	assert.Equal(t, map[string]int64{"siguiendo": 1, "seguidores": 1}, rawCounts)

	var following []models.UserSummary
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relation/seguimientos/", ana.ID, nil, &following))
	require.Len(t, following, 1)
	assert.Equal(t, "luis", following[0].Username)

	var followers []models.UserSummary
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relation/seguidores/", ana.ID, nil, &followers))
	require.Len(t, followers, 1)
	assert.Equal(t, luis.ID, followers[0].ID)

	var card models.ProfileCard
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relation/"+itoa(luis.ID)+"/info/", ana.ID, nil, &card))
	assert.Equal(t, "luis", card.Username)
	assert.Equal(t, int64(1), card.Followers)
	assert.Equal(t, int64(1), card.Following)

	assert.Equal(t, http.StatusNoContent, env.call(t, http.MethodDelete, "/api/relation/"+itoa(luis.ID)+"/", ana.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, env.call(t, http.MethodDelete, "/api/relation/"+itoa(luis.ID)+"/", ana.ID, nil, nil))

	// ana drops luis as a follower.
	assert.Equal(t, http.StatusNoContent,
		env.call(t, http.MethodDelete, "/api/relation/"+itoa(luis.ID)+"/eliminar_seguidor/", ana.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound,
		env.call(t, http.MethodDelete, "/api/relation/"+itoa(luis.ID)+"/eliminar_seguidor/", ana.ID, nil, nil))

	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relation/estado_mutuo/"+itoa(luis.ID)+"/", ana.ID, nil, &mutual))
	assert.Equal(t, models.MutualStatus{}, mutual)
}

func TestRelationEndpoints_Validation(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ana := testutil.CreateUser(t, env.db, "ana")

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		expected int
	}{
		{"FollowSelf", http.MethodPost, "/api/relation/", FollowRequest{FolloweeID: ana.ID}, http.StatusBadRequest},
		{"FollowMissingTarget", http.MethodPost, "/api/relation/", map[string]any{}, http.StatusBadRequest},
		{"FollowUnknownUser", http.MethodPost, "/api/relation/", FollowRequest{FolloweeID: 9999}, http.StatusNotFound},
		{"BadID", http.MethodGet, "/api/relation/abc/estado/", nil, http.StatusBadRequest},
		{"ZeroID", http.MethodDelete, "/api/relation/0/", nil, http.StatusBadRequest},
		{"UnknownProfile", http.MethodGet, "/api/relation/9999/info/", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, env.call(t, tt.method, tt.path, ana.ID, tt.body, nil))
		})
	}
}

func TestRelationEndpoints_LegacyConflictStatus(t *testing.T) {
	cfg := testConfig()
	cfg.FeatureFlags = "legacy_conflict_status=on"
	env := newTestEnv(t, cfg, nil)
	ana := testutil.CreateUser(t, env.db, "ana")
	luis := testutil.CreateUser(t, env.db, "luis")
	testutil.Follow(t, env.db, ana.ID, luis.ID)

	var errResp models.ErrorResponse
	assert.Equal(t, http.StatusBadRequest,
		env.call(t, http.MethodPost, "/api/relation/", ana.ID, FollowRequest{FolloweeID: luis.ID}, &errResp))
	assert.Equal(t, models.CodeConflict, errResp.Code)
}

func TestRelationEndpoints_Pagination(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ana := testutil.CreateUser(t, env.db, "ana")
	for _, name := range []string{"b", "c", "d"} {
		u := testutil.CreateUser(t, env.db, name)
		testutil.Follow(t, env.db, ana.ID, u.ID)
	}

	var page []models.UserSummary
	require.Equal(t, http.StatusOK, env.call(t, http.MethodGet, "/api/relation/seguimientos/?limit=2&offset=1", ana.ID, nil, &page))
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].Username)
	assert.Equal(t, "d", page[1].Username)
}
