package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t, false)
	owner := ts.register("owner@gmail.com")

	game := ts.listGame(owner.ID, "", marioBody())

	assert.NotEmpty(t, game.ID)
	assert.Equal(t, "Super Mario Bros.", game.Name)
	assert.Equal(t, 1985, game.YearPublished)
	assert.Equal(t, 0, game.PreviousOwners)
	assert.Equal(t, owner.ID, game.OwnerID)
	assert.Equal(t, GameLinks{
		Self:   Link{Href: "/games/" + game.ID},
		Owner:  Link{Href: "/users/" + owner.ID},
		Update: Link{Href: "/games/" + game.ID, Method: "PUT"},
		Delete: Link{Href: "/games/" + game.ID, Method: "DELETE"},
	}, game.Links)

	w := ts.do(http.MethodGet, "/games/"+game.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, game, fetched)
}

func TestCreateGame_Errors(t *testing.T) {
	ts := newTestServer(t, false)
	owner := ts.register("owner@gmail.com")

	missingYear := marioBody()
	delete(missingYear, "year_published")

	tests := []struct {
		name       string
		ownerID    string
		body       gin.H
		wantStatus int
	}{
		{"unknown owner", uuid.NewString(), marioBody(), http.StatusNotFound},
		{"malformed owner", "nobody", marioBody(), http.StatusBadRequest},
		{"no owner", "", marioBody(), http.StatusBadRequest},
		{"missing field", owner.ID, missingYear, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(http.MethodPost, "/games?owner_id="+tt.ownerID, "", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestCreateGame_StrictDerivesOwner(t *testing.T) {
	ts := newTestServer(t, true)
	alice := ts.register("alice@gmail.com")
	bob := ts.register("bob@gmail.com")

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodPost, "/games", "", marioBody()).Code)
	assert.Equal(t, http.StatusForbidden, ts.do(http.MethodPost, "/games?owner_id="+alice.ID, bob.ID, marioBody()).Code)

	game := ts.listGame("", bob.ID, marioBody())
	assert.Equal(t, bob.ID, game.OwnerID)
}

func TestUpdateGame(t *testing.T) {
	ts := newTestServer(t, false)
	owner := ts.register("owner@gmail.com")
	other := ts.register("other@gmail.com")
	game := ts.listGame(owner.ID, "", marioBody())

	tests := []struct {
		name       string
		token      string
		id         string
		body       any
		wantStatus int
	}{
		{"no credential", "", game.ID, gin.H{"condition": "Mint"}, http.StatusUnauthorized},
		{"missing game", other.ID, uuid.NewString(), gin.H{"condition": "Mint"}, http.StatusNotFound},
		{"not the owner", other.ID, game.ID, gin.H{"condition": "Mint"}, http.StatusForbidden},
		{"empty payload", owner.ID, game.ID, gin.H{}, http.StatusBadRequest},
		{"wrong type", owner.ID, game.ID, gin.H{"year_published": "soon"}, http.StatusBadRequest},
		{"owner", owner.ID, game.ID, gin.H{"condition": "Mint", "previous_owners": 1}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(http.MethodPut, "/games/"+tt.id, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}

	w := ts.do(http.MethodGet, "/games/"+game.ID, "", nil)
	var fetched GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Mint", fetched.Condition)
	assert.Equal(t, 1, fetched.PreviousOwners)
	assert.Equal(t, "Super Mario Bros.", fetched.Name)
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t, false)
	owner := ts.register("owner@gmail.com")
	game := ts.listGame(owner.ID, "", marioBody())

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodDelete, "/games/"+uuid.NewString(), "", nil).Code)

	w := ts.do(http.MethodDelete, "/games/"+game.ID, "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/games/"+game.ID, "", nil).Code)
}

func TestDeleteGame_Strict(t *testing.T) {
	ts := newTestServer(t, true)
	owner := ts.register("owner@gmail.com")
	other := ts.register("other@gmail.com")
	game := ts.listGame("", owner.ID, marioBody())

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodDelete, "/games/"+game.ID, "", nil).Code)
	assert.Equal(t, http.StatusForbidden, ts.do(http.MethodDelete, "/games/"+game.ID, other.ID, nil).Code)
	assert.Equal(t, http.StatusNoContent, ts.do(http.MethodDelete, "/games/"+game.ID, owner.ID, nil).Code)
}

func TestGetGames(t *testing.T) {
	ts := newTestServer(t, false)
	owner := ts.register("owner@gmail.com")
	mario := ts.listGame(owner.ID, "", marioBody())
	sonic := ts.listGame(owner.ID, "", gin.H{
		"name": "Sonic the Hedgehog", "publisher": "Sega", "year_published": 1991,
		"system": "Genesis", "condition": "Fair", "previous_owners": 2,
	})

	search := func(query string) []GameResponse {
		t.Helper()
		w := ts.do(http.MethodGet, "/games"+query, owner.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var games []GameResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
		return games
	}

	assert.Len(t, search(""), 2)

	found := search("?name=mario")
	require.Len(t, found, 1)
	assert.Equal(t, mario.ID, found[0].ID)

	found = search("?system=GEN")
	require.Len(t, found, 1)
	assert.Equal(t, sonic.ID, found[0].ID)

	assert.Empty(t, search("?name=mario&system=genesis"))
}

func TestGetGames_EmptyResultIsArray(t *testing.T) {
	ts := newTestServer(t, false)
	user := ts.register("owner@gmail.com")

	w := ts.do(http.MethodGet, "/games?name=zelda", user.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetGames_RequiresCredential(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(http.MethodGet, "/games", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}
