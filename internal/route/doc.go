// Package route decides which view of the app is active.
//
// The active view is always derived from the current auth.Session plus the
// navigation intents applied so far. A signed-out session resolves to
// Unauthenticated no matter where navigation last was, and the navigation
// position is dropped whenever the session is signed out or changes hands.
package route
