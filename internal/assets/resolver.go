package assets

import "errors"

// Resolver looks a style up in an optional custom directory first and
// falls back to the embedded styles when the custom one has no such name.
type Resolver struct {
	custom   StyleLoader
	embedded StyleLoader
}

// NewResolver creates a Resolver. An empty customDir uses embedded styles
// only; a non-empty one must be a readable directory.
func NewResolver(customDir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if customDir == "" {
		return r, nil
	}

	fsLoader, err := NewFilesystemLoader(customDir)
	if err != nil {
		return nil, err
	}
	r.custom = fsLoader
	return r, nil
}

// LoadStyle resolves name. Only ErrStyleNotFound from the custom directory
// triggers the fallback; validation and read errors are returned as is.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if err == nil {
		return css, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

var _ StyleLoader = (*Resolver)(nil)
