package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Print job statuses.
const (
	JobStatusQueued    = "queued"
	JobStatusRendering = "rendering"
	JobStatusDone      = "done"
	JobStatusFailed    = "failed"
)

// ErrInvalidJobConfig is returned when a print job's grid, spacing, or
// page configuration is not positive. Rejected before anything is queued.
var ErrInvalidJobConfig = errors.New("print job configuration must have positive dimensions, spacing, DPI, and page size")

// PageRef identifies one exported page tile of a finished job.
type PageRef struct {
	Row int `bson:"row" json:"row"`
	Col int `bson:"col" json:"col"`
}

// PrintJob is a maze print request and its lifecycle state. Wall and path
// widths are physical millimeters; the page size is physical centimeters.
// A zero Seed means the maze is generated from a random seed.
type PrintJob struct {
	ID      uuid.UUID `bson:"_id" json:"id"`
	OwnerID uuid.UUID `bson:"ownerId" json:"owner_id"`

	Cols         int     `bson:"cols" json:"cols"`
	Rows         int     `bson:"rows" json:"rows"`
	WallWidthMM  float64 `bson:"wallWidthMm" json:"wall_width_mm"`
	PathWidthMM  float64 `bson:"pathWidthMm" json:"path_width_mm"`
	DPI          int     `bson:"dpi" json:"dpi"`
	PageWidthCM  float64 `bson:"pageWidthCm" json:"page_width_cm"`
	PageHeightCM float64 `bson:"pageHeightCm" json:"page_height_cm"`
	Seed         int64   `bson:"seed" json:"seed"`

	Status string `bson:"status" json:"status"`
	Error  string `bson:"error,omitempty" json:"error,omitempty"`

	PagesX int       `bson:"pagesX" json:"pages_x"`
	PagesY int       `bson:"pagesY" json:"pages_y"`
	Pages  []PageRef `bson:"pages" json:"pages"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// PrintJobConfig holds the parameters for creating a PrintJob.
type PrintJobConfig struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Cols         int
	Rows         int
	WallWidthMM  float64
	PathWidthMM  float64
	DPI          int
	PageWidthCM  float64
	PageHeightCM float64
	Seed         int64
}

// NewPrintJob validates the configuration and returns a queued job.
func NewPrintJob(config PrintJobConfig) (*PrintJob, error) {
	job := &PrintJob{
		ID:           config.ID,
		OwnerID:      config.OwnerID,
		Cols:         config.Cols,
		Rows:         config.Rows,
		WallWidthMM:  config.WallWidthMM,
		PathWidthMM:  config.PathWidthMM,
		DPI:          config.DPI,
		PageWidthCM:  config.PageWidthCM,
		PageHeightCM: config.PageHeightCM,
		Seed:         config.Seed,
		Status:       JobStatusQueued,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// Validate checks the job's print configuration.
func (j *PrintJob) Validate() error {
	if j.Cols <= 0 || j.Rows <= 0 {
		return ErrInvalidJobConfig
	}
	if j.WallWidthMM <= 0 || j.PathWidthMM <= 0 {
		return ErrInvalidJobConfig
	}
	if j.DPI <= 0 || j.PageWidthCM <= 0 || j.PageHeightCM <= 0 {
		return ErrInvalidJobConfig
	}
	return nil
}

// HasPage reports whether the job exported the page at (row, col).
func (j *PrintJob) HasPage(row, col int) bool {
	for _, p := range j.Pages {
		if p.Row == row && p.Col == col {
			return true
		}
	}
	return false
}
