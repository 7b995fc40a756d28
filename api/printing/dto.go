package printing

import "github.com/beka-birhanu/mazeprint-api/domain"

// CreateJobRequest is the request body for submitting a print job. Only the
// grid size is mandatory; omitted print parameters fall back to the server
// defaults.
type CreateJobRequest struct {
	Cols int `json:"cols" binding:"required,min=1"`
	Rows int `json:"rows" binding:"required,min=1"`

	WallWidthMM  float64 `json:"wall_width_mm"`
	PathWidthMM  float64 `json:"path_width_mm"`
	DPI          int     `json:"dpi"`
	PageWidthCM  float64 `json:"page_width_cm"`
	PageHeightCM float64 `json:"page_height_cm"`
	Seed         int64   `json:"seed"`
}

// JobResponse is the API representation of a print job.
type JobResponse struct {
	ID     string `json:"id"`
	Cols   int    `json:"cols"`
	Rows   int    `json:"rows"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`

	PagesX int              `json:"pages_x"`
	PagesY int              `json:"pages_y"`
	Pages  []domain.PageRef `json:"pages"`
}

func toJobResponse(job *domain.PrintJob) *JobResponse {
	return &JobResponse{
		ID:     job.ID.String(),
		Cols:   job.Cols,
		Rows:   job.Rows,
		Status: job.Status,
		Error:  job.Error,
		PagesX: job.PagesX,
		PagesY: job.PagesY,
		Pages:  job.Pages,
	}
}
