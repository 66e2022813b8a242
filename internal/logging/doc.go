// Package logging provides a unified logging interface for the numeric
// utilities. It abstracts the underlying logging implementation, allowing
// consistent structured logging across components while supporting multiple
// backends. The default backend is zerolog.
package logging
