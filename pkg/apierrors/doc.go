// Package apierrors converts raw transport failures into a small typed error
// taxonomy with user-safe messages.
//
// Every failure that leaves the SDK is exactly one *Error carrying an HTTP
// status (0 for network failures), a stable Code from a fixed enumeration, and
// the upstream detail payload kept separate from the user-facing message.
//
// Normalize never panics and never returns nil: callers wrap any error from
// the transport with an operation-specific fallback message and surface the
// result directly.
//
//	res, err := client.Post(ctx, "/check-breach", req, &out)
//	if err != nil {
//		return nil, apierrors.Normalize(err, "Failed to check breach exposure.")
//	}
//
// Display extracts a non-empty, user-presentable string from any error value,
// including nil and errors that did not originate in this package.
package apierrors
