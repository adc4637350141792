// Package server wires and runs the application's HTTP transport.
//
// It owns the server lifecycle: startup, POSIX signal handling, and graceful
// shutdown. In-flight requests, including open note subscription streams, get
// a bounded drain window before the process exits.
package server
