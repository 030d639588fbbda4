package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zhuoyaazh/my-pixel-world/internal/apperror"
	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
	"github.com/zhuoyaazh/my-pixel-world/internal/tictactoe"
	mockedTransport "github.com/zhuoyaazh/my-pixel-world/mocks/transport"
)

var errRedisDown = errors.New("redis down")

type testServer struct {
	handler http.Handler
	games   *mockedTransport.MockgameUseCase
	tokens  *mockedTransport.MocktokenVerifier
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	games := mockedTransport.NewMockgameUseCase(t)
	tokens := mockedTransport.NewMocktokenVerifier(t)
	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), games, tokens)

	return testServer{handler: server.Router(), games: games, tokens: tokens}
}

func (that testServer) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	that.handler.ServeHTTP(rec, req)

	return rec
}

func newSession() *entity.Session {
	return entity.NewSession("abc", entity.DifficultyHard, tictactoe.CreateInitialState(), time.Unix(0, 0).UTC())
}

func decodeGame(t *testing.T, rec *httptest.ResponseRecorder) gameResponse {
	t.Helper()

	var resp gameResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp.Error
}

func TestPing(t *testing.T) {
	// Given: a server
	server := newTestServer(t)

	// When: ping is requested
	rec := server.do(http.MethodGet, "/ping", "", "")

	// Then: it answers pong
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestNewGame(t *testing.T) {
	t.Run("Creates a game", func(t *testing.T) {
		// Given: a use case that creates easy games
		server := newTestServer(t)
		session := newSession()
		session.Difficulty = entity.DifficultyEasy

		server.games.EXPECT().NewGame(mock.Anything, entity.DifficultyEasy).Return(session, "tok", nil).Once()

		// When: an easy game is requested
		rec := server.do(http.MethodPost, "/games", `{"difficulty":"easy"}`, "")

		// Then: the session and its token are returned
		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeGame(t, rec)
		assert.Equal(t, "tok", resp.Token)
		assert.Equal(t, "abc", resp.Session.ID)
		assert.Equal(t, entity.DifficultyEasy, resp.Session.Difficulty)
		assert.Equal(t, "Your turn (X)", resp.Status)
	})

	t.Run("Empty body selects the hard opponent", func(t *testing.T) {
		// Given: a use case expecting a hard game
		server := newTestServer(t)

		server.games.EXPECT().NewGame(mock.Anything, entity.DifficultyHard).Return(newSession(), "tok", nil).Once()

		// When: no body is sent
		rec := server.do(http.MethodPost, "/games", "", "")

		// Then: the game is created
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Unknown difficulty", func(t *testing.T) {
		// Given: a server
		server := newTestServer(t)

		// When: an unknown difficulty is requested
		rec := server.do(http.MethodPost, "/games", `{"difficulty":"nightmare"}`, "")

		// Then: the request is rejected before reaching the use case
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "unknown difficulty")
	})

	t.Run("Malformed body", func(t *testing.T) {
		// Given: a server
		server := newTestServer(t)

		// When: the body is not JSON
		rec := server.do(http.MethodPost, "/games", `{"difficulty":`, "")

		// Then: the request is rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Storage failure is hidden", func(t *testing.T) {
		// Given: a use case that fails
		server := newTestServer(t)

		server.games.EXPECT().
			NewGame(mock.Anything, entity.DifficultyHard).
			Return(nil, "", fmt.Errorf("failed to create session: %w", errRedisDown)).
			Once()

		// When: a game is requested
		rec := server.do(http.MethodPost, "/games", `{}`, "")

		// Then: a generic internal error is returned
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", decodeError(t, rec))
	})
}

func TestSessionToken(t *testing.T) {
	t.Run("Missing token", func(t *testing.T) {
		// Given: a server
		server := newTestServer(t)

		// When: the game is requested without a token
		rec := server.do(http.MethodGet, "/games/abc", "", "")

		// Then: the request is unauthorized
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token for another session", func(t *testing.T) {
		// Given: a verifier that rejects the token
		server := newTestServer(t)

		server.tokens.EXPECT().
			VerifyToken("tok", "abc").
			Return(fmt.Errorf("%w: token belongs to another session", apperror.ErrInvalidToken)).
			Once()

		// When: the game is requested
		rec := server.do(http.MethodGet, "/games/abc", "", "tok")

		// Then: the request is unauthorized
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, decodeError(t, rec), "another session")
	})
}

func TestGetGame(t *testing.T) {
	t.Run("Returns the session", func(t *testing.T) {
		// Given: a stored session
		server := newTestServer(t)

		server.tokens.EXPECT().VerifyToken("tok", "abc").Return(nil).Once()
		server.games.EXPECT().GetGame(mock.Anything, "abc").Return(newSession(), nil).Once()

		// When: it is requested in Chinese
		rec := server.do(http.MethodGet, "/games/abc?lang=zh", "", "tok")

		// Then: the status is localized
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeGame(t, rec)
		assert.Equal(t, "abc", resp.Session.ID)
		assert.Empty(t, resp.Token)
		assert.Equal(t, "轮到你了 (X)", resp.Status)
	})

	t.Run("Unknown session", func(t *testing.T) {
		// Given: a session that expired
		server := newTestServer(t)

		server.tokens.EXPECT().VerifyToken("tok", "abc").Return(nil).Once()
		server.games.EXPECT().
			GetGame(mock.Anything, "abc").
			Return(nil, fmt.Errorf("failed to get session: %w", apperror.ErrGameNotFound)).
			Once()

		// When: it is requested
		rec := server.do(http.MethodGet, "/games/abc", "", "tok")

		// Then: not found is returned
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTurn(t *testing.T) {
	t.Run("Applies the turn", func(t *testing.T) {
		// Given: a game where the opponent answers in the center
		server := newTestServer(t)
		session := newSession()
		session.State.Board[0] = entity.PlayerMark
		session.State.Board[4] = entity.OpponentMark
		session.Moves = 1

		server.tokens.EXPECT().VerifyToken("tok", "abc").Return(nil).Once()
		server.games.EXPECT().MakeTurn(mock.Anything, "abc", 0).Return(session, nil).Once()

		// When: the player takes cell 0, asking for Indonesian labels
		req := httptest.NewRequest(http.MethodPost, "/games/abc/turn", strings.NewReader(`{"cell":0}`))
		req.Header.Set("Authorization", "Bearer tok")
		req.Header.Set("Accept-Language", "id-ID,id;q=0.9,en;q=0.8")
		rec := httptest.NewRecorder()
		server.handler.ServeHTTP(rec, req)

		// Then: the updated board is returned
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeGame(t, rec)
		assert.Equal(t, entity.OpponentMark, resp.Session.State.Board[4])
		assert.Equal(t, 1, resp.Session.Moves)
		assert.Equal(t, "Giliranmu (X)", resp.Status)
	})

	t.Run("Missing cell", func(t *testing.T) {
		// Given: a valid token
		server := newTestServer(t)

		server.tokens.EXPECT().VerifyToken("tok", "abc").Return(nil).Once()

		// When: no cell is sent
		rec := server.do(http.MethodPost, "/games/abc/turn", `{}`, "tok")

		// Then: the request is rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "cell is required")
	})

	t.Run("Occupied cell", func(t *testing.T) {
		// Given: a use case rejecting the move
		server := newTestServer(t)

		server.tokens.EXPECT().VerifyToken("tok", "abc").Return(nil).Once()
		server.games.EXPECT().
			MakeTurn(mock.Anything, "abc", 4).
			Return(newSession(), fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrCellOccupied)).
			Once()

		// When: the occupied cell is played
		rec := server.do(http.MethodPost, "/games/abc/turn", `{"cell":4}`, "tok")

		// Then: the move conflicts with the board
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decodeError(t, rec), "cell is already occupied")
	})
}

func TestReset(t *testing.T) {
	// Given: a finished game
	server := newTestServer(t)

	server.tokens.EXPECT().VerifyToken("tok", "abc").Return(nil).Once()
	server.games.EXPECT().ResetGame(mock.Anything, "abc").Return(newSession(), nil).Once()

	// When: it is reset
	rec := server.do(http.MethodPost, "/games/abc/reset", "", "tok")

	// Then: the fresh session is returned
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeGame(t, rec)
	assert.Equal(t, tictactoe.CreateInitialState(), resp.Session.State)
}

func TestStats(t *testing.T) {
	t.Run("Filtered by difficulty", func(t *testing.T) {
		// Given: recorded hard games
		server := newTestServer(t)
		expected := &entity.Stats{Difficulty: entity.DifficultyHard, Draws: 2, OpponentWins: 1, Total: 3}

		server.games.EXPECT().Stats(mock.Anything, entity.DifficultyHard).Return(expected, nil).Once()

		// When: hard stats are requested
		rec := server.do(http.MethodGet, "/stats?difficulty=hard", "", "")

		// Then: the summary is returned
		require.Equal(t, http.StatusOK, rec.Code)
		var stats entity.Stats
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
		assert.Equal(t, *expected, stats)
	})

	t.Run("All games", func(t *testing.T) {
		// Given: a use case expecting no filter
		server := newTestServer(t)

		server.games.EXPECT().Stats(mock.Anything, entity.Difficulty("")).Return(&entity.Stats{}, nil).Once()

		// When: stats are requested without a difficulty
		rec := server.do(http.MethodGet, "/stats", "", "")

		// Then: the request succeeds
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown difficulty", func(t *testing.T) {
		// Given: a server
		server := newTestServer(t)

		// When: an unknown difficulty is requested
		rec := server.do(http.MethodGet, "/stats?difficulty=medium", "", "")

		// Then: the request is rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
