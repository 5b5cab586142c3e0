// Package log contains the Logger used by the generator CLI and the web server. The Logger is a wrapper around
// zap.SugaredLogger. There should be a single instance of the Logger per process, injected into anything that logs.
// Everything is written to the writer passed to NewLogger (stderr in the binaries) so that a document on stdout stays parseable.
package log
