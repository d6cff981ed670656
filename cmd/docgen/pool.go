package main

import (
	"context"
	"fmt"

	docgen "github.com/alnah/go-docgen"
)

// CLIConverter is the part of docgen.Converter the batch runner needs.
type CLIConverter interface {
	Convert(ctx context.Context, input docgen.Input) (*docgen.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*docgen.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter exposes a docgen.ConverterPool through Pool.
type poolAdapter struct {
	pool *docgen.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

func newConverterPool(size int, opts ...docgen.Option) Pool {
	return &poolAdapter{pool: docgen.NewConverterPool(size, opts...)}
}

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics when c did not come from Acquire.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*docgen.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
