// Package apiclient executes HTTP requests against the ShadowGraph backend,
// injects bearer credentials, and recovers transparently from local
// network-reachability failures.
//
// # Host fallback
//
// Development backends are typically reachable on either localhost or
// 127.0.0.1, which browsers and some tooling treat as distinct origins. When a
// request fails with a pure network error (no response received), the client
// rewrites the base address to the sibling loopback alias and resubmits the
// same request once per candidate. Attempted bases are tracked in an immutable
// attempt record so no candidate is ever retried and the loop is bounded by
// the candidate set size. Server-returned error statuses are never retried.
//
// # Session signals
//
// Every 401 response invokes the OnUnauthorized callback exactly once with
// the request path before the error is returned to the caller. The callback
// is injected at construction time so the coupling between transport and
// session teardown stays explicit and testable.
//
//	cfg := apiclient.Config{BaseURL: "http://127.0.0.1:8000", Timeout: 8 * time.Second}
//	client, err := apiclient.New(cfg,
//		apiclient.WithTokenSource(sessions),
//		apiclient.WithOnUnauthorized(func(path string) { ... }),
//	)
//
//	var out loginResponse
//	err := client.Post(ctx, "/auth/login", payload, &out)
package apiclient
