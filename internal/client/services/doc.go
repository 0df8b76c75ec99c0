// Package services holds the workflow state machines behind the portal
// views: the reporting dashboard, the admin console and sign-in.
//
// Workflows keep their state behind a mutex that is never held across a
// network call. Overlapping operations are allowed; whichever completes
// last decides the message and collections. User actions never return
// errors: they record an inline message instead.
package services
