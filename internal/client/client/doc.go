// Package client holds the remote side of synckeeper: the Gateway and
// Authenticator contracts, their JSON-over-HTTP implementations, and the
// bootstrap for the local SQLite file that keeps the session between runs.
//
// Transport failures surface as ErrUnavailable; non-2xx responses surface as
// *RemoteError, whose message is the server's own text. 401 and 403
// responses also match ErrUnauthorized via errors.Is.
package client
