package shadowgraph_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shadowgraph "github.com/shadowgraph/shadowgraph-go"
	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
	"github.com/shadowgraph/shadowgraph-go/pkg/session"
)

func TestSearchResearch(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /search-research", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"papers": []map[string]any{
				{"title": "Entity Resolution at Scale", "authors": "A. Researcher"},
				{"title": "Graphs of Identity"},
			},
		})
	})

	client, _ := newTestClient(t, mux)

	papers, err := client.SearchResearch(context.Background(), "Jordan Vale", "Example University")
	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, "A. Researcher", papers[0].Authors)
	assert.Equal(t, "Jordan Vale, Co-authors", papers[1].Authors)
	assert.Equal(t, "Example University", papers[0].Institution)
	assert.Equal(t, "Example University", papers[1].Institution)
}

func TestGraphData(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /graph-data", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"summary": map[string]any{"node_count": 0},
		})
	})

	client, _ := newTestClient(t, mux)

	graph, err := client.GraphData(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, graph.Nodes)
	assert.NotNil(t, graph.Edges)
}

func TestSettings(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the toggle map", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("PUT /settings", func(w http.ResponseWriter, r *http.Request) {
			var got shadowgraph.Settings
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.True(t, got.BreachAlerts)
			writeJSON(t, w, http.StatusOK, map[string]any{"settings": got})
		})

		client, _ := newTestClient(t, mux)

		saved, err := client.SaveSettings(context.Background(), shadowgraph.Settings{BreachAlerts: true})
		require.NoError(t, err)
		assert.True(t, saved.BreachAlerts)
	})

	t.Run("delete account clears the session", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /account", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		client, store := newTestClient(t, mux)
		require.NoError(t, client.Sessions().SignIn(&session.Session{Token: "tok", User: session.User{ID: 1}}))

		require.NoError(t, client.DeleteAccount(context.Background()))
		assert.False(t, client.IsAuthenticated())

		persisted, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, persisted)
	})
}

func TestReportExports(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.7 shadowgraph report")
	raw := []byte(`{"generated_at":"2026-08-28","sections":[]}`)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /report/export/pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	})
	mux.HandleFunc("GET /report/export/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
	})
	mux.HandleFunc("GET /report/history", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})

	client, _ := newTestClient(t, mux)

	blob, err := client.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pdf, blob)

	doc, err := client.ExportJSON(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(doc))

	events, err := client.ReportHistory(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestScrapePipeline(t *testing.T) {
	t.Parallel()

	t.Run("requires a seed URL before any request", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
		}))

		for _, call := range []func() error{
			func() error {
				_, err := client.ScrapeAggregate(context.Background(), shadowgraph.ScrapeRequest{})
				return err
			},
			func() error {
				_, err := client.EnqueueScrapeJob(context.Background(), shadowgraph.ScrapeRequest{})
				return err
			},
			func() error {
				_, err := client.CreateCrawlerSchedule(context.Background(), shadowgraph.ScheduleRequest{})
				return err
			},
		} {
			err := call()
			var typed *apierrors.Error
			require.ErrorAs(t, err, &typed)
			assert.Equal(t, apierrors.CodeValidationError, typed.Code)
		}
		assert.Zero(t, requests.Load())
	})

	t.Run("runs the synchronous pipeline", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /scrape-aggregate", func(w http.ResponseWriter, r *http.Request) {
			var req shadowgraph.ScrapeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []string{"https://example.com"}, req.SeedURLs)
			writeJSON(t, w, http.StatusOK, map[string]any{})
		})

		client, _ := newTestClient(t, mux)

		outcome, err := client.ScrapeAggregate(context.Background(), shadowgraph.ScrapeRequest{
			SeedURLs: []string{"https://example.com"},
		})
		require.NoError(t, err)
		assert.NotNil(t, outcome.Pages)
		assert.NotNil(t, outcome.Aggregates)
	})

	t.Run("manages background jobs", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /jobs/scrape", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"job_id": "job-1", "status": "queued"})
		})
		mux.HandleFunc("GET /jobs/scrape/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"job_id": r.PathValue("id"), "status": "done"})
		})

		client, _ := newTestClient(t, mux)

		job, err := client.EnqueueScrapeJob(context.Background(), shadowgraph.ScrapeRequest{
			SeedURLs: []string{"https://example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, "queued", job.Status)

		fetched, err := client.GetScrapeJob(context.Background(), job.JobID)
		require.NoError(t, err)
		assert.Equal(t, "job-1", fetched.JobID)
		assert.Equal(t, "done", fetched.Status)
	})

	t.Run("manages schedules", func(t *testing.T) {
		t.Parallel()

		var deleted atomic.Value
		deleted.Store("")

		mux := http.NewServeMux()
		mux.HandleFunc("POST /crawler/schedules", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"schedule_id": "sched-1"})
		})
		mux.HandleFunc("GET /crawler/schedules", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"schedules": []map[string]any{{"schedule_id": "sched-1"}}})
		})
		mux.HandleFunc("DELETE /crawler/schedules/{id}", func(w http.ResponseWriter, r *http.Request) {
			deleted.Store(r.PathValue("id"))
			w.WriteHeader(http.StatusNoContent)
		})

		client, _ := newTestClient(t, mux)

		created, err := client.CreateCrawlerSchedule(context.Background(), shadowgraph.ScheduleRequest{
			SeedURLs:        []string{"https://example.com"},
			IntervalMinutes: 60,
		})
		require.NoError(t, err)

		schedules, err := client.ListCrawlerSchedules(context.Background())
		require.NoError(t, err)
		require.Len(t, schedules, 1)

		require.NoError(t, client.DeleteCrawlerSchedule(context.Background(), created.ScheduleID))
		assert.Equal(t, "sched-1", deleted.Load())
	})
}

func TestInsights(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /digital-footprint-summary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})
	mux.HandleFunc("GET /ai-narrative", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"stories": []map[string]any{{"title": "Your coding footprint grew"}},
		})
	})
	mux.HandleFunc("GET /privacy-alerts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})
	mux.HandleFunc("GET /skill-radar", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"axes": []string{"Go", "Python"}})
	})

	client, _ := newTestClient(t, mux)

	summary, err := client.FootprintSummary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summary.ActivePlatforms)
	assert.Contains(t, summary.Categories, "Social")

	stories, err := client.Narrative(context.Background())
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "Your coding footprint grew", stories[0]["title"])

	alerts, err := client.PrivacyAlerts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)

	radar, err := client.SkillRadar(context.Background())
	require.NoError(t, err)
	assert.Contains(t, radar, "axes")
}

func TestOps(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"ok": true, "service": "shadowgraph"})
	})
	mux.HandleFunc("GET /ops/readiness", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"ready":   false,
			"checks":  map[string]bool{"hibp": false, "db": true},
			"missing": []string{"HIBP_API_KEY"},
		})
	})

	client, _ := newTestClient(t, mux)

	ok, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	readiness, err := client.OpsReadiness(context.Background())
	require.NoError(t, err)
	assert.False(t, readiness.Ready)
	assert.False(t, readiness.Checks["hibp"])
	assert.Equal(t, []string{"HIBP_API_KEY"}, readiness.Missing)
}
