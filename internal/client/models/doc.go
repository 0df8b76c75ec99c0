// Package models defines the client-side view of the reporting portal data:
// identities, clients, reports, the in-progress report draft and the admin
// statistics rows. JSON tags follow the remote API's snake_case fields.
package models
