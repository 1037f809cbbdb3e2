package apiclient

import (
	"net/url"
	"strings"
)

// attemptRecord tracks the base addresses already tried for one logical
// request. It is immutable: with returns a copy so the retry policy stays a
// pure function over (current base, record).
type attemptRecord struct {
	tried []string
}

func newAttemptRecord(base string) attemptRecord {
	return attemptRecord{tried: []string{normalizeBase(base)}}
}

func (a attemptRecord) has(base string) bool {
	base = normalizeBase(base)
	for _, t := range a.tried {
		if t == base {
			return true
		}
	}
	return false
}

func (a attemptRecord) with(base string) attemptRecord {
	next := make([]string, 0, len(a.tried)+1)
	next = append(next, a.tried...)
	next = append(next, normalizeBase(base))
	return attemptRecord{tried: next}
}

func normalizeBase(base string) string {
	return strings.TrimRight(base, "/")
}

// loopbackCandidates computes the ordered fallback bases for current. The
// loopback numeric address and the localhost alias are swapped for each
// other; a non-loopback base is pointed at fallbackHost when one is
// configured. The default development addresses close the list. The current
// base itself is excluded.
func loopbackCandidates(current *url.URL, fallbackHost string) []string {
	var candidates []string
	add := func(base string) {
		base = normalizeBase(base)
		if base == "" || base == normalizeBase(current.String()) {
			return
		}
		for _, c := range candidates {
			if c == base {
				return
			}
		}
		candidates = append(candidates, base)
	}

	switch current.Hostname() {
	case "localhost":
		add(withHost(current, "127.0.0.1"))
	case "127.0.0.1":
		add(withHost(current, "localhost"))
	default:
		if fallbackHost != "" {
			add(withHost(current, fallbackHost))
		}
	}

	add("http://127.0.0.1:8000")
	add("http://localhost:8000")
	return candidates
}

// nextCandidate returns the first untried fallback base for current, or false
// when the candidate set is exhausted.
func nextCandidate(current *url.URL, fallbackHost string, rec attemptRecord) (string, bool) {
	for _, candidate := range loopbackCandidates(current, fallbackHost) {
		if !rec.has(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func withHost(u *url.URL, host string) string {
	clone := *u
	if port := u.Port(); port != "" {
		clone.Host = host + ":" + port
	} else {
		clone.Host = host
	}
	return clone.String()
}
