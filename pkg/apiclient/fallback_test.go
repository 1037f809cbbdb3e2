package apiclient

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestLoopbackCandidates(t *testing.T) {
	t.Parallel()

	t.Run("localhost swaps to numeric loopback", func(t *testing.T) {
		t.Parallel()

		got := loopbackCandidates(mustParse(t, "http://localhost:9000"), "")
		assert.Equal(t, []string{
			"http://127.0.0.1:9000",
			"http://127.0.0.1:8000",
			"http://localhost:8000",
		}, got)
	})

	t.Run("numeric loopback swaps to localhost", func(t *testing.T) {
		t.Parallel()

		got := loopbackCandidates(mustParse(t, "http://127.0.0.1:9000"), "")
		assert.Equal(t, []string{
			"http://localhost:9000",
			"http://127.0.0.1:8000",
			"http://localhost:8000",
		}, got)
	})

	t.Run("non-loopback base substitutes the fallback host", func(t *testing.T) {
		t.Parallel()

		got := loopbackCandidates(mustParse(t, "http://backend.internal:9000"), "10.1.2.3")
		assert.Equal(t, []string{
			"http://10.1.2.3:9000",
			"http://127.0.0.1:8000",
			"http://localhost:8000",
		}, got)
	})

	t.Run("current base is never a candidate", func(t *testing.T) {
		t.Parallel()

		got := loopbackCandidates(mustParse(t, "http://127.0.0.1:8000"), "")
		assert.NotContains(t, got, "http://127.0.0.1:8000")
		assert.Equal(t, []string{
			"http://localhost:8000",
		}, got)
	})
}

func TestNextCandidate(t *testing.T) {
	t.Parallel()

	t.Run("skips already-tried bases", func(t *testing.T) {
		t.Parallel()

		current := mustParse(t, "http://localhost:9000")
		rec := newAttemptRecord(current.String())

		first, ok := nextCandidate(current, "", rec)
		require.True(t, ok)
		assert.Equal(t, "http://127.0.0.1:9000", first)

		rec = rec.with(first)
		second, ok := nextCandidate(mustParse(t, first), "", rec)
		require.True(t, ok)
		assert.Equal(t, "http://127.0.0.1:8000", second)
	})

	t.Run("exhausts after the fixed candidate set", func(t *testing.T) {
		t.Parallel()

		current := mustParse(t, "http://localhost:9000")
		rec := newAttemptRecord(current.String())

		seen := map[string]bool{current.String(): true}
		for i := 0; i < 10; i++ {
			candidate, ok := nextCandidate(current, "", rec)
			if !ok {
				break
			}
			assert.False(t, seen[candidate], "candidate %s attempted twice", candidate)
			seen[candidate] = true
			rec = rec.with(candidate)
		}
		// Base plus at most three distinct fallbacks.
		assert.LessOrEqual(t, len(seen), 4)

		_, ok := nextCandidate(current, "", rec)
		assert.False(t, ok)
	})
}

func TestAttemptRecordImmutable(t *testing.T) {
	t.Parallel()

	rec := newAttemptRecord("http://localhost:8000")
	next := rec.with("http://127.0.0.1:8000")

	assert.False(t, rec.has("http://127.0.0.1:8000"))
	assert.True(t, next.has("http://127.0.0.1:8000"))
	assert.True(t, next.has("http://localhost:8000"))
}

func TestNormalizeBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://localhost:8000", normalizeBase("http://localhost:8000/"))
	assert.Equal(t, "http://localhost:8000", normalizeBase("http://localhost:8000"))
}
