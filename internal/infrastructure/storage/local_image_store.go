// Package storage guarda las imágenes de los anuncios en el disco local.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jhoicas/anuncios-armazem/internal/application/listing"
	"github.com/jhoicas/anuncios-armazem/pkg/filename"
)

var _ listing.ImageStore = (*LocalImageStore)(nil)

// LocalImageStore escribe en un directorio plano que también se sirve como estático.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore construye el store; el directorio se crea en el primer Save.
func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{dir: dir}
}

// Dir directorio de destino.
func (s *LocalImageStore) Dir() string { return s.dir }

// Save sanea name y escribe r en dir/<nombre>. Un archivo con el mismo nombre se sobrescribe.
func (s *LocalImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	safe := filename.Secure(name)
	if safe == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de imágenes: %w", err)
	}
	f, err := os.Create(filepath.Join(s.dir, safe))
	if err != nil {
		return "", fmt.Errorf("crear imagen %s: %w", safe, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("escribir imagen %s: %w", safe, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("cerrar imagen %s: %w", safe, err)
	}
	return safe, nil
}
