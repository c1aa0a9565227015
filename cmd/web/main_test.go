package main

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfire/internal/store"
)

type brokenStore struct{}

func (brokenStore) Load() (int, error) { return 0, errors.New("disk gone") }
func (brokenStore) Save(int) error     { return errors.New("disk gone") }

func TestLandingPage(t *testing.T) {
	mux := newMux("play.example.org", &store.Memory{}, log.New(io.Discard))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ssh -t play.example.org") {
		t.Error("SSH host not substituted into the page")
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}
}

func TestHighScoreAPI(t *testing.T) {
	scores := &store.Memory{}
	if err := scores.Save(1234); err != nil {
		t.Fatal(err)
	}
	mux := newMux("host", scores, log.New(io.Discard))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/highscore", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"high_score":1234}` {
		t.Errorf("body = %s", got)
	}
}

func TestHighScoreAPIStoreFailure(t *testing.T) {
	mux := newMux("host", brokenStore{}, log.New(io.Discard))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/highscore", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
