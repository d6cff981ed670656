// Package process terminates browser process trees left behind by the
// Chrome engine.
package process
