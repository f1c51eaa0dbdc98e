// Package client is the Remote Data Gateway for the shiftnotes backend.
//
// # Overview
//
// HTTPClient issues one authenticated HTTP round trip per call: it attaches
// "Authorization: Token <token>" from its Credentials, sends and decodes
// JSON, and tags each request with an X-Request-ID for log correlation.
// There is no retry, backoff, cache or client-side timeout.
//
// Typed endpoints cover users, curriculum (EPAs, categories, competencies),
// organizations (cohorts, programs, sites), assessments including the
// role-scoped and mailbox actions, analytics roll-ups and CSV exports.
// Collections share the generic Resource type.
//
// # Error Handling
//
// Any non-2xx response is an *APIError carrying the status and decoded body;
// it matches ErrValidation, ErrUnauthorized, ErrForbidden and ErrNotFound
// with errors.Is. Transport failures wrap ErrUnavailable. A 401 on a request
// that carried a token calls Credentials.Expire with that token before
// returning.
// Message converts any of these into user-facing text.
package client
