package i

import (
	"github.com/google/uuid"

	"github.com/beka-birhanu/mazeprint-api/render"
)

// PageExporter persists rendered canvases for a print job.
type PageExporter interface {
	// ExportPage writes one page tile and returns its storage path.
	ExportPage(jobID uuid.UUID, pageRow, pageCol int, c render.Canvas) (string, error)

	// ExportFull writes the complete maze image and returns its storage
	// path.
	ExportFull(jobID uuid.UUID, c render.Canvas) (string, error)

	// PagePath returns where the page tile of a job is stored.
	PagePath(jobID uuid.UUID, pageRow, pageCol int) string
}
