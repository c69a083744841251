package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lapolla/quiniela/internal/platform/logging"
	"github.com/lapolla/quiniela/internal/usecase"
)

func newTestClient(t *testing.T, serverURL string, maxRetries int) *Client {
	t.Helper()

	return NewClient(ClientConfig{
		BaseURL:     serverURL,
		Token:       "test-token",
		Competition: "PD",
		Timeout:     2 * time.Second,
		MaxRetries:  maxRetries,
		Logger:      logging.NewNop(),
	})
}

func TestFetchCompetitionTeams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/competitions/PD/teams" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("X-Auth-Token"); got != "test-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"teams":[
			{"id":81,"name":"FC Barcelona","tla":"BAR","venue":"Camp Nou"},
			{"id":86,"name":"Real Madrid CF","tla":"RMA","venue":"Santiago Bernabeu"},
			{"id":0,"name":"ghost","tla":"GHO","venue":""}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	teams, err := client.FetchCompetitionTeams(context.Background())
	if err != nil {
		t.Fatalf("fetch competition teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got=%d", len(teams))
	}
	if teams[0].ID != 81 || teams[0].Short != "BAR" {
		t.Fatalf("unexpected first team: %+v", teams[0])
	}
	if teams[1].Venue != "Santiago Bernabeu" {
		t.Fatalf("unexpected venue: %q", teams[1].Venue)
	}
}

func TestFetchTeamScheduledMatches(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams/81/matches" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("status"); got != "SCHEDULED" {
			t.Errorf("unexpected status query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"matches":[
			{"id":5001,"utcDate":"2025-09-14T19:00:00Z","competition":{"code":"PD"},"homeTeam":{"id":81},"awayTeam":{"id":86}},
			{"id":5002,"utcDate":"not-a-date","competition":{"code":"PD"},"homeTeam":{"id":81},"awayTeam":{"id":77}},
			{"id":5003,"utcDate":"2025-09-20T16:15:00Z","competition":{"code":"CDR"},"homeTeam":{"id":90},"awayTeam":{"id":81}}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	matches, err := client.FetchTeamScheduledMatches(context.Background(), 81)
	if err != nil {
		t.Fatalf("fetch scheduled matches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got=%d", len(matches))
	}
	if matches[0].ID != 5001 || matches[0].CompetitionCode != "PD" {
		t.Fatalf("unexpected first match: %+v", matches[0])
	}
	want := time.Date(2025, 9, 14, 19, 0, 0, 0, time.UTC)
	if !matches[0].KickoffAt.Equal(want) {
		t.Fatalf("unexpected kickoff: %v", matches[0].KickoffAt)
	}
	if matches[1].CompetitionCode != "CDR" {
		t.Fatalf("expected other-competition fixture to pass through, got %+v", matches[1])
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"teams":[{"id":81,"name":"FC Barcelona","tla":"BAR","venue":""}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 2)
	teams, err := client.FetchCompetitionTeams(context.Background())
	if err != nil {
		t.Fatalf("fetch competition teams: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got=%d", len(teams))
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 requests, got=%d", got)
	}
}

func TestClient_DoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3)
	if _, err := client.FetchCompetitionTeams(context.Background()); err == nil {
		t.Fatal("expected error for forbidden response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single request, got=%d", got)
	}
}

func TestClient_RequiresToken(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "http://feed.invalid", Logger: logging.NewNop()})
	_, err := client.FetchCompetitionTeams(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency-unavailable error, got %v", err)
	}
}
