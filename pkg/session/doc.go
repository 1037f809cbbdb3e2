// Package session is the single source of truth for authentication state.
//
// A Session pairs an opaque bearer token with the backend's user record. The
// Manager keeps the active session in memory and writes through to a durable
// Store on every mutation, so a process restart followed by Restore
// reproduces the same session. No network validation happens on restore: an
// expired token is only discovered on the first authenticated request, which
// surfaces as a 401 and tears the session down through the Bridge.
//
// The Bridge decouples "the transport observed a 401" from "the application
// must react". It listens on the unauthorized event bus, clears the Manager,
// and hands the originating path to an injected Navigator so the post-login
// flow can return the user to where they were.
//
// State machine: Anonymous -> (sign-in success) -> Authenticated ->
// (sign-out or observed 401) -> Anonymous. The transition to Anonymous is
// always safe to repeat.
package session
