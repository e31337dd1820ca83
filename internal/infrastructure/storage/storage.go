package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-actions/pkg/config"
)

// TranscriptStore keeps uploaded transcript files
type TranscriptStore interface {
	// Save stores the upload and returns a reference Read accepts
	Save(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
	// Read returns the stored transcript text
	Read(ctx context.Context, ref string) (string, error)
}

// New creates the store selected by cfg.Type
func New(ctx context.Context, cfg *config.StorageConfig) (TranscriptStore, error) {
	switch cfg.Type {
	case config.StorageTypeLocal:
		return NewLocalStore(cfg.UploadDir)
	case config.StorageTypeMinIO:
		return NewMinIOStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}

// objectName builds a collision-free name that keeps the upload's base name
func objectName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == ".." || base == "" {
		base = "transcript.txt"
	}
	return uuid.NewString() + "-" + base
}
