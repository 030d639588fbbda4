package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
	"github.com/zhuoyaazh/my-pixel-world/internal/i18n"
)

type newGameRequest struct {
	Difficulty string `json:"difficulty"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type gameResponse struct {
	Session *entity.Session `json:"session"`
	Token   string          `json:"token,omitempty"`
	Status  string          `json:"status"`
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	session, token, err := that.games.NewGame(r.Context(), difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, gameResponse{
		Session: session,
		Token:   token,
		Status:  i18n.Status(requestLanguage(r), session.State),
	})
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeSession(w, r, session)
}

func (that *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, fmt.Errorf("%w: cell is required", errBadRequest))
		return
	}

	session, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeSession(w, r, session)
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	session, err := that.games.ResetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeSession(w, r, session)
}

func (that *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var difficulty entity.Difficulty

	if value := r.URL.Query().Get("difficulty"); value != "" {
		parsed, err := entity.ParseDifficulty(value)
		if err != nil {
			that.writeError(w, err)
			return
		}
		difficulty = parsed
	}

	stats, err := that.games.Stats(r.Context(), difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (that *Server) writeSession(w http.ResponseWriter, r *http.Request, session *entity.Session) {
	writeJSON(w, http.StatusOK, gameResponse{
		Session: session,
		Status:  i18n.Status(requestLanguage(r), session.State),
	})
}

// decodeBody - an empty body leaves dst at its zero value.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: malformed JSON body: %w", errBadRequest, err)
	}

	return nil
}

// requestLanguage - the lang query parameter wins over Accept-Language.
func requestLanguage(r *http.Request) language.Tag {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return i18n.ParseTag(lang)
	}

	return i18n.ParseTag(r.Header.Get("Accept-Language"))
}
