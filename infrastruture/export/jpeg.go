// Package export persists rendered canvases as JPEG files on disk.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/beka-birhanu/mazeprint-api/render"
)

const (
	defaultQuality = 90

	sliceFileFmt = "maze-slice-%d-%d.jpg"
	fullFileName = "maze.jpg"
)

// ErrNotEncodable is returned when a canvas implementation cannot write
// itself as JPEG.
var ErrNotEncodable = errors.New("export: canvas does not support JPEG encoding")

// jpegEncoder is the subset of canvas implementations that can write
// themselves as JPEG.
type jpegEncoder interface {
	EncodeJPEG(w io.Writer, quality int) error
}

// JPEGExporter writes maze pages as JPEG files under a base directory, one
// subdirectory per job.
type JPEGExporter struct {
	baseDir string
	quality int
}

// NewJPEGExporter creates an exporter rooted at baseDir, creating the
// directory if needed. A non-positive quality falls back to the default.
func NewJPEGExporter(baseDir string, quality int) (*JPEGExporter, error) {
	if quality <= 0 {
		quality = defaultQuality
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &JPEGExporter{baseDir: baseDir, quality: quality}, nil
}

// ExportPage writes one page tile and returns the file path.
func (e *JPEGExporter) ExportPage(jobID uuid.UUID, pageRow, pageCol int, c render.Canvas) (string, error) {
	path := e.PagePath(jobID, pageRow, pageCol)
	return path, e.write(path, c)
}

// ExportFull writes the complete maze image and returns the file path.
func (e *JPEGExporter) ExportFull(jobID uuid.UUID, c render.Canvas) (string, error) {
	path := filepath.Join(e.baseDir, jobID.String(), fullFileName)
	return path, e.write(path, c)
}

// PagePath returns where the page tile of a job is stored.
func (e *JPEGExporter) PagePath(jobID uuid.UUID, pageRow, pageCol int) string {
	return filepath.Join(e.baseDir, jobID.String(), fmt.Sprintf(sliceFileFmt, pageRow, pageCol))
}

func (e *JPEGExporter) write(path string, c render.Canvas) error {
	enc, ok := c.(jpegEncoder)
	if !ok {
		return ErrNotEncodable
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := enc.EncodeJPEG(f, e.quality); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
