package pages_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zhoulin/matchquiz/internal/codec"
	"github.com/zhoulin/matchquiz/internal/config"
	"github.com/zhoulin/matchquiz/internal/handler/pages"
	"github.com/zhoulin/matchquiz/internal/model/quiz"
	"github.com/zhoulin/matchquiz/internal/service/session"
	"github.com/zhoulin/matchquiz/internal/store"
)

func setupPages() (*chi.Mux, *store.Store) {
	cfg := &config.Config{
		OwnerPassword: "game",
		DefaultOwner:  "Charles",
		BaseURL:       "http://quiz.test",
	}
	history := store.New(&store.MemorySlot{})
	handler := pages.New(cfg, session.NewService(), history)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, history
}

func postForm(r *chi.Mux, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func get(r *chi.Mux, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestIndexRendersLogin(t *testing.T) {
	r, _ := setupPages()

	resp := get(r, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Sign in") {
		t.Fatal("login form missing from index page")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupPages()

	resp := postForm(r, "/login", url.Values{"password": {"nope"}, "owner": {"Ana"}})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Wrong password.") {
		t.Fatal("expected wrong-password message")
	}
}

func TestLoginRedirectsToSetup(t *testing.T) {
	r, _ := setupPages()

	resp := postForm(r, "/login", url.Values{"password": {"game"}, "owner": {"Ana"}})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/setup?owner=Ana" {
		t.Fatalf("unexpected redirect target: %q", loc)
	}
}

func TestLoginDefaultsOwnerName(t *testing.T) {
	r, _ := setupPages()

	resp := postForm(r, "/login", url.Values{"password": {"game"}})
	if loc := resp.Header().Get("Location"); loc != "/setup?owner=Charles" {
		t.Fatalf("unexpected redirect target: %q", loc)
	}
}

func TestGenerateShowsShareLinkAndSaves(t *testing.T) {
	r, history := setupPages()

	resp := postForm(r, "/setup", url.Values{
		"owner": {"Ana"},
		"q":     {"Favorite color?", ""},
		"a":     {"Blue", ""},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "http://quiz.test/quiz?data=") {
		t.Fatal("share link missing from setup page")
	}
	if got := history.List(); len(got) != 1 || got[0].Owner != "Ana" {
		t.Fatalf("session not saved to history: %+v", got)
	}
}

func TestGenerateWithoutQuestions(t *testing.T) {
	r, history := setupPages()

	resp := postForm(r, "/setup", url.Values{
		"owner": {"Ana"},
		"q":     {"", "  "},
		"a":     {"Blue", ""},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Please add at least one question.") {
		t.Fatal("expected validation message")
	}
	if got := history.List(); len(got) != 0 {
		t.Fatalf("invalid session must not be saved: %+v", got)
	}
}

func TestQuizPageWithoutData(t *testing.T) {
	r, _ := setupPages()

	resp := get(r, "/quiz")
	if !strings.Contains(resp.Body.String(), "No quiz data found") {
		t.Fatal("expected no-data message")
	}
}

func TestQuizPageInvalidToken(t *testing.T) {
	r, _ := setupPages()

	resp := get(r, "/quiz?data=not-a-valid-token")
	if !strings.Contains(resp.Body.String(), "invalid or corrupted") {
		t.Fatal("expected invalid-data message")
	}
}

func TestPartnerFlowEndsInResult(t *testing.T) {
	r, _ := setupPages()

	authored, err := session.NewService().Author("Ana", []quiz.Pair{
		{Question: "Favorite color?", Answer: "Blue"},
	})
	if err != nil {
		t.Fatalf("Author err: %v", err)
	}
	token := codec.Encode(authored)

	quizPage := get(r, "/quiz?data="+url.QueryEscape(token))
	if !strings.Contains(quizPage.Body.String(), "Favorite color?") {
		t.Fatal("question missing from quiz page")
	}

	submit := postForm(r, "/quiz", url.Values{
		"data":   {token},
		"answer": {" BLUE "},
	})
	if submit.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", submit.Code)
	}

	loc := submit.Header().Get("Location")
	if !strings.HasPrefix(loc, "/result?data=") {
		t.Fatalf("unexpected redirect target: %q", loc)
	}

	result := get(r, loc)
	if result.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", result.Code)
	}
	body := result.Body.String()
	if !strings.Contains(body, "100%") {
		t.Fatalf("expected a perfect score, body: %s", body)
	}
	if !strings.Contains(body, "1 / 1 matched") {
		t.Fatal("expected the matches summary")
	}
	if !strings.Contains(body, "/quiz?data=") {
		t.Fatal("expected a play-again link")
	}
}

func TestResultPageWithoutData(t *testing.T) {
	r, _ := setupPages()

	resp := get(r, "/result")
	if !strings.Contains(resp.Body.String(), "No result data found.") {
		t.Fatal("expected no-data message")
	}
}

func TestSetupLoadsSavedSession(t *testing.T) {
	r, history := setupPages()

	saved, err := history.Save(quiz.Payload{
		Owner:   "Ana",
		Created: time.Now().UTC(),
		Pairs:   []quiz.Pair{{Question: "Favorite color?", Answer: "Blue"}},
	})
	if err != nil {
		t.Fatalf("Save err: %v", err)
	}

	resp := get(r, "/setup?owner=Ana&load="+saved.ID)
	body := resp.Body.String()
	if !strings.Contains(body, `value="Favorite color?"`) {
		t.Fatal("saved question not pre-filled")
	}
	if !strings.Contains(body, `value="Blue"`) {
		t.Fatal("saved answer not pre-filled")
	}
}

func TestDeleteSavedSession(t *testing.T) {
	r, history := setupPages()

	saved, err := history.Save(quiz.Payload{
		Owner:   "Ana",
		Created: time.Now().UTC(),
		Pairs:   []quiz.Pair{{Question: "Color?", Answer: "Blue"}},
	})
	if err != nil {
		t.Fatalf("Save err: %v", err)
	}

	resp := postForm(r, "/setup/delete", url.Values{"id": {saved.ID}, "owner": {"Ana"}})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.Code)
	}
	if got := history.List(); len(got) != 0 {
		t.Fatalf("saved session not deleted: %+v", got)
	}
}
