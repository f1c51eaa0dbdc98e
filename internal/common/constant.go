// Package common contains shared constants and sentinel errors used across
// the shiftnotes client components.
package common

// AuthHeaderName is the HTTP header that carries the session token on
// outbound requests.
const AuthHeaderName = "Authorization"

// AuthScheme prefixes the token value in AuthHeaderName, e.g. "Token abc".
const AuthScheme = "Token"

// RequestIDHeaderName correlates a single gateway round trip in logs.
const RequestIDHeaderName = "X-Request-ID"

// DefaultPageSize mirrors the backend's page size.
const DefaultPageSize = 20
