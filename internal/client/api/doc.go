// Package api is the authenticated HTTP client for the MHP reporting API.
//
// Every request goes through a RoundTripper that reads the session store
// and attaches the bearer credential when there is one. Non-2xx responses
// are returned as *Error; use errors.Is with ErrUnauthorized and
// ErrUnavailable to classify them and Detail to get the server's message.
package api
