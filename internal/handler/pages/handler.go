// Package pages renders the four server-side pages: owner login, quiz
// setup, the partner quiz, and the result.
package pages

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/zhoulin/matchquiz/internal/codec"
	"github.com/zhoulin/matchquiz/internal/config"
	"github.com/zhoulin/matchquiz/internal/model/quiz"
	"github.com/zhoulin/matchquiz/internal/score"
	"github.com/zhoulin/matchquiz/internal/service/session"
	"github.com/zhoulin/matchquiz/internal/store"
	"github.com/zhoulin/matchquiz/pkg/web"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

var tierMessages = map[score.Tier]string{
	score.TierPerfect:     "Perfect match! You two are in sync.",
	score.TierGreat:       "Great match! Lots in common.",
	score.TierOK:          "Not bad - room to learn more about each other.",
	score.TierKeepTalking: "Keep talking - every relationship grows with time.",
}

// Handler serves the owner and partner facing pages.
type Handler struct {
	cfg      *config.Config
	sessions *session.Service
	history  *store.Store
}

// New creates the page handler.
func New(cfg *config.Config, sessions *session.Service, history *store.Store) *Handler {
	return &Handler{cfg: cfg, sessions: sessions, history: history}
}

// RegisterRoutes wires the page routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/login", h.handleLogin)
	r.Get("/setup", h.handleSetup)
	r.Post("/setup", h.handleGenerate)
	r.Post("/setup/delete", h.handleDeleteSaved)
	r.Get("/quiz", h.handleQuiz)
	r.Post("/quiz", h.handleSubmit)
	r.Get("/result", h.handleResult)
}

type indexData struct {
	Error string
}

type setupRow struct {
	Number   int
	Question string
	Answer   string
}

type savedView struct {
	ID      string
	Owner   string
	Created string
	Count   int
}

type setupData struct {
	Owner    string
	Rows     []setupRow
	Error    string
	ShareURL string
	Saved    []savedView
}

type quizData struct {
	Invalid   string
	Owner     string
	Token     string
	Questions []quizQuestion
}

type quizQuestion struct {
	Number   int
	Question string
}

type resultData struct {
	Invalid string
	Owner   string
	Matches int
	Total   int
	Percent int
	Message string
	Replay  string
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", indexData{})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "index.html", indexData{Error: "Invalid form submission."})
		return
	}
	if r.PostFormValue("password") != h.cfg.OwnerPassword {
		h.render(w, "index.html", indexData{Error: "Wrong password."})
		return
	}
	owner := r.PostFormValue("owner")
	if owner == "" {
		owner = h.cfg.DefaultOwner
	}

	q := url.Values{}
	q.Set("owner", owner)
	http.Redirect(w, r, "/setup?"+q.Encode(), http.StatusSeeOther)
}

func (h *Handler) handleSetup(w http.ResponseWriter, r *http.Request) {
	data := setupData{
		Owner: h.ownerName(r.URL.Query().Get("owner")),
		Rows:  emptyRows(),
		Saved: h.savedViews(),
	}

	// "Use" on a saved session pre-fills the form with its pairs.
	if id := r.URL.Query().Get("load"); id != "" {
		if saved, ok := h.history.Find(id); ok {
			for i, pair := range saved.Pairs {
				if i >= len(data.Rows) {
					break
				}
				data.Rows[i].Question = pair.Question
				data.Rows[i].Answer = pair.Answer
			}
		}
	}

	h.render(w, "setup.html", data)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/setup", http.StatusSeeOther)
		return
	}

	owner := h.ownerName(r.PostFormValue("owner"))
	rows := formRows(r.PostForm["q"], r.PostForm["a"])

	data := setupData{
		Owner: owner,
		Rows:  rows,
		Saved: h.savedViews(),
	}

	pairs := make([]quiz.Pair, len(rows))
	for i, row := range rows {
		pairs[i] = quiz.Pair{Question: row.Question, Answer: row.Answer}
	}

	payload, err := h.sessions.Author(owner, pairs)
	if err != nil {
		data.Error = "Please add at least one question."
		h.render(w, "setup.html", data)
		return
	}

	token := codec.Encode(payload)
	if token == "" {
		data.Error = "Could not encode the quiz. Please try again."
		h.render(w, "setup.html", data)
		return
	}

	// History failures degrade to an unsaved (but still shareable) link.
	if _, err := h.history.Save(payload); err != nil {
		log.Printf("[pages] saving session history: %v", err)
	}

	data.ShareURL = web.QuizURL(web.ShareBase(h.cfg.BaseURL, r), token)
	data.Saved = h.savedViews()
	h.render(w, "setup.html", data)
}

func (h *Handler) handleDeleteSaved(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err == nil {
		if id := r.PostFormValue("id"); id != "" {
			if err := h.history.Delete(id); err != nil {
				log.Printf("[pages] deleting saved session: %v", err)
			}
		}
	}

	q := url.Values{}
	q.Set("owner", h.ownerName(r.PostFormValue("owner")))
	http.Redirect(w, r, "/setup?"+q.Encode(), http.StatusSeeOther)
}

func (h *Handler) handleQuiz(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("data")
	if token == "" {
		h.render(w, "quiz.html", quizData{
			Invalid: "No quiz data found. Please open the link the owner gave you.",
		})
		return
	}

	payload, ok := codec.Decode(token)
	if !ok || len(payload.Pairs) == 0 {
		h.render(w, "quiz.html", quizData{
			Invalid: "Quiz data is invalid or corrupted.",
		})
		return
	}

	data := quizData{
		Owner: payload.Owner,
		Token: token,
	}
	for i, pair := range payload.Pairs {
		data.Questions = append(data.Questions, quizQuestion{
			Number:   i + 1,
			Question: pair.Question,
		})
	}
	h.render(w, "quiz.html", data)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "quiz.html", quizData{Invalid: "Invalid form submission."})
		return
	}

	payload, ok := codec.Decode(r.PostFormValue("data"))
	if !ok || len(payload.Pairs) == 0 {
		h.render(w, "quiz.html", quizData{
			Invalid: "Quiz data is invalid or corrupted.",
		})
		return
	}

	answered := h.sessions.Submit(payload, r.PostForm["answer"])
	token := codec.Encode(answered)
	if token == "" {
		h.render(w, "quiz.html", quizData{
			Invalid: "Could not record your answers. Please try again.",
		})
		return
	}

	http.Redirect(w, r, "/result?data="+url.QueryEscape(token), http.StatusSeeOther)
}

func (h *Handler) handleResult(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("data")
	if token == "" {
		h.render(w, "result.html", resultData{Invalid: "No result data found."})
		return
	}

	payload, ok := codec.Decode(token)
	if !ok {
		h.render(w, "result.html", resultData{Invalid: "Invalid result data."})
		return
	}

	var partnerAnswers []string
	if payload.Partner != nil {
		partnerAnswers = payload.Partner.Answers
	}
	result := score.Score(payload.Pairs, partnerAnswers)

	h.render(w, "result.html", resultData{
		Owner:   payload.Owner,
		Matches: result.Matches,
		Total:   result.Total,
		Percent: result.Percent,
		Message: tierMessages[score.TierFor(result.Percent)],
		Replay:  "/quiz?data=" + url.QueryEscape(codec.Encode(h.sessions.Replay(payload))),
	})
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[pages] rendering %s: %v", name, err)
	}
}

func (h *Handler) ownerName(raw string) string {
	if raw == "" {
		return h.cfg.DefaultOwner
	}
	return raw
}

func (h *Handler) savedViews() []savedView {
	entries := h.history.List()
	views := make([]savedView, len(entries))
	for i, entry := range entries {
		views[i] = savedView{
			ID:      entry.ID,
			Owner:   entry.Owner,
			Created: entry.Created.Local().Format("Jan 2, 2006 15:04"),
			Count:   len(entry.Pairs),
		}
	}
	return views
}

func emptyRows() []setupRow {
	rows := make([]setupRow, quiz.MaxPairs)
	for i := range rows {
		rows[i].Number = i + 1
	}
	return rows
}

// formRows zips the repeated q/a form fields back into rows, preserving the
// submitted values so the page re-renders exactly what the owner typed.
func formRows(questions, answers []string) []setupRow {
	rows := emptyRows()
	for i := range rows {
		if i < len(questions) {
			rows[i].Question = questions[i]
		}
		if i < len(answers) {
			rows[i].Answer = answers[i]
		}
	}
	return rows
}
