// Package cli is the interactive shiftnotes terminal client.
//
// It wires configuration, the local token store, the REST gateway and the
// screens, then runs a read-eval-print loop. Rendering is all this package
// does: every command delegates to a session or screen operation and prints
// the resulting snapshot.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command list.
package cli
