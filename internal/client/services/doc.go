// Package services holds the screens of the client. Each screen owns one or
// more list-query controllers and the few mutations it offers. Screens talk
// to the gateway through narrow interfaces so tests can swap in fakes.
package services
