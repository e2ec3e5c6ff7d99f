// Package api exposes the session protocol as a JSON API: authoring a quiz,
// listing and pruning the saved history, and re-issuing share links.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhoulin/matchquiz/internal/codec"
	"github.com/zhoulin/matchquiz/internal/config"
	"github.com/zhoulin/matchquiz/internal/model/quiz"
	"github.com/zhoulin/matchquiz/internal/service/session"
	"github.com/zhoulin/matchquiz/internal/store"
	"github.com/zhoulin/matchquiz/pkg/web"
)

// Handler serves the /api routes.
type Handler struct {
	cfg      *config.Config
	sessions *session.Service
	history  *store.Store
}

// New creates the API handler.
func New(cfg *config.Config, sessions *session.Service, history *store.Store) *Handler {
	return &Handler{cfg: cfg, sessions: sessions, history: history}
}

// RegisterRoutes wires the quiz API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/quizzes", h.handleListQuizzes)
	r.Post("/quizzes", h.handleCreateQuiz)
	r.Delete("/quizzes/{id}", h.handleDeleteQuiz)
	r.Get("/quizzes/{id}/link", h.handleQuizLink)
}

type createQuizRequest struct {
	Owner string      `json:"owner"`
	Pairs []quiz.Pair `json:"pairs"`
}

type quizLinkResponse struct {
	ID      string `json:"id,omitempty"`
	Token   string `json:"token"`
	QuizURL string `json:"quizUrl"`
}

func (h *Handler) handleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	var payload createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	owner := payload.Owner
	if owner == "" {
		owner = h.cfg.DefaultOwner
	}

	authored, err := h.sessions.Author(owner, payload.Pairs)
	if err != nil {
		if errors.Is(err, quiz.ErrNoQuestions) || errors.Is(err, quiz.ErrTooManyQuestions) || errors.Is(err, quiz.ErrBlankQuestion) {
			web.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		web.RespondError(w, http.StatusInternalServerError, "failed to create quiz")
		return
	}

	saved, err := h.history.Save(authored)
	if err != nil {
		web.RespondError(w, http.StatusInternalServerError, "failed to save quiz")
		return
	}

	token := codec.Encode(authored)
	if token == "" {
		web.RespondError(w, http.StatusInternalServerError, "failed to encode quiz")
		return
	}

	web.RespondJSON(w, http.StatusCreated, quizLinkResponse{
		ID:      saved.ID,
		Token:   token,
		QuizURL: web.QuizURL(web.ShareBase(h.cfg.BaseURL, r), token),
	})
}

func (h *Handler) handleListQuizzes(w http.ResponseWriter, r *http.Request) {
	entries := h.history.List()
	if entries == nil {
		entries = []quiz.Payload{}
	}
	web.RespondJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleDeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.history.Delete(id); err != nil {
		web.RespondError(w, http.StatusInternalServerError, "failed to delete quiz")
		return
	}
	// Deleting an unknown id is a no-op, not an error.
	web.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleQuizLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	saved, ok := h.history.Find(id)
	if !ok {
		web.RespondError(w, http.StatusNotFound, "quiz not found")
		return
	}

	// Share tokens never carry the store identifier.
	fresh := saved.Clone()
	fresh.ID = ""

	token := codec.Encode(fresh)
	if token == "" {
		web.RespondError(w, http.StatusInternalServerError, "failed to encode quiz")
		return
	}

	web.RespondJSON(w, http.StatusOK, quizLinkResponse{
		ID:      saved.ID,
		Token:   token,
		QuizURL: web.QuizURL(web.ShareBase(h.cfg.BaseURL, r), token),
	})
}
