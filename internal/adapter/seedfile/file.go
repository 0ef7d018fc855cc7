// internal/adapter/seedfile/file.go
package seedfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/goccy/go-json"
)

// File читает и пишет набор данных в json-файл.
// Реализует ports.DatasetSource и ports.DatasetSink.
type File struct {
	path   string
	logger *slog.Logger
}

func NewFile(path string, logger *slog.Logger) *File {
	return &File{path: path, logger: logger}
}

// LoadDataset читает набор данных из файла
func (f *File) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("seed file %s: %w", f.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read seed file %s: %w", f.path, err)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(body, &ds); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", f.path, err)
	}

	f.logger.Info("dataset loaded from file", "path", f.path, "bytes", len(body))
	return &ds, nil
}

// SaveDataset записывает набор данных атомарно: временный файл, затем rename
func (f *File) SaveDataset(ctx context.Context, dataset *domain.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename snapshot to %s: %w", f.path, err)
	}

	f.logger.Info("dataset written to file", "path", f.path, "bytes", len(body))
	return nil
}
