package main

import (
	"io"
	"os"
	"time"

	docgen "github.com/alnah/go-docgen"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment, and converter pool creation.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	NewPool func(size int, opts ...docgen.Option) Pool
}

// DefaultEnv returns the production environment backed by a
// docgen.ConverterPool.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewPool: newConverterPool,
	}
}
