// Package cli is the terminal front end of the MHP reporting portal.
//
// It hosts the views (login, dashboard, admin), runs every view activation
// through the access guard and renders workflow state as plain text. The
// interactive REPL is the default command; login, logout, whoami,
// dashboard and admin are also available as one-shot subcommands.
package cli
