// Package shadowgraph is the Go client SDK for the ShadowGraph
// digital-footprint backend.
//
// The Client exposes one function per backend operation: face scanning,
// username discovery, breach checks, research lookup, risk scoring, graph
// data, settings, report export, and the scrape job/schedule pipeline. Each
// function shapes the request payload, calls the transport, applies defensive
// defaults to the response so consumers never branch on missing fields, and
// normalizes every failure into a typed apierrors.Error with an
// operation-specific fallback message.
//
// Session state lives in pkg/session and is persisted through a single
// durable record. The transport broadcasts an unauthorized event on any 401;
// the session bridge reacts by clearing the session and redirecting to the
// auth entry point, independent of the calling code path.
//
//	client, err := shadowgraph.New()
//	if err != nil { ... }
//	defer client.Close()
//
//	sess, err := client.Login(ctx, "a@b.com", "password123")
//	...
//	result, err := client.ScanUsername(ctx, "octocat")
package shadowgraph
