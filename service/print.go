package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/beka-birhanu/mazeprint-api/domain"
	"github.com/beka-birhanu/mazeprint-api/layout"
	"github.com/beka-birhanu/mazeprint-api/maze"
	"github.com/beka-birhanu/mazeprint-api/render"
	"github.com/beka-birhanu/mazeprint-api/service/i"
)

const (
	defaultQueueKey     = "printjobs:pending"
	defaultPollInterval = time.Second
)

// ErrPageNotExported is returned when a page is requested that the job did
// not export.
var ErrPageNotExported = errors.New("page was not exported for this job")

// Printing coordinates maze print jobs: it persists and queues incoming
// jobs, and its worker loop renders them one at a time. A single job always
// runs the full generate, layout, draw, slice, export pipeline to
// completion; there is no partial result.
type Printing struct {
	jobs      i.PrintJobRepo
	queue     i.SortedQueue
	exporter  i.PageExporter
	newCanvas render.Factory
	logger    i.Logger

	queueKey string
	poll     time.Duration

	// seedSource provides seeds for jobs that did not pin one.
	seedSource func() int64
}

// PrintingConfig holds the dependencies for a Printing service.
type PrintingConfig struct {
	Jobs      i.PrintJobRepo
	Queue     i.SortedQueue
	Exporter  i.PageExporter
	NewCanvas render.Factory
	Logger    i.Logger

	QueueKey     string
	PollInterval time.Duration
}

// NewPrinting creates a Printing service from the given configuration.
func NewPrinting(cfg *PrintingConfig) (*Printing, error) {
	if cfg.Jobs == nil || cfg.Queue == nil || cfg.Exporter == nil || cfg.NewCanvas == nil || cfg.Logger == nil {
		return nil, errors.New("printing service requires jobs, queue, exporter, canvas factory, and logger")
	}

	queueKey := cfg.QueueKey
	if queueKey == "" {
		queueKey = defaultQueueKey
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}

	return &Printing{
		jobs:       cfg.Jobs,
		queue:      cfg.Queue,
		exporter:   cfg.Exporter,
		newCanvas:  cfg.NewCanvas,
		logger:     cfg.Logger,
		queueKey:   queueKey,
		poll:       poll,
		seedSource: func() int64 { return time.Now().UnixNano() },
	}, nil
}

// Submit validates the job, persists it as queued, and enqueues it for the
// worker. Invalid configurations are rejected before anything is stored.
func (p *Printing) Submit(ctx context.Context, job *domain.PrintJob) error {
	if err := job.Validate(); err != nil {
		return err
	}

	job.Status = domain.JobStatusQueued
	if err := p.jobs.Save(job); err != nil {
		return err
	}

	score := float64(time.Now().UnixNano())
	if err := p.queue.Enqueue(ctx, p.queueKey, score, job.ID.String()); err != nil {
		return err
	}

	p.logger.Info(fmt.Sprintf("Queued print job %s (%dx%d cells)", job.ID, job.Cols, job.Rows))
	return nil
}

// Job retrieves a job by ID.
func (p *Printing) Job(id uuid.UUID) (*domain.PrintJob, error) {
	return p.jobs.ByID(id)
}

// JobsFor retrieves the jobs submitted by a user.
func (p *Printing) JobsFor(ownerID uuid.UUID) ([]*domain.PrintJob, error) {
	return p.jobs.ByOwner(ownerID)
}

// PagePath returns the storage path of an exported page.
func (p *Printing) PagePath(job *domain.PrintJob, pageRow, pageCol int) (string, error) {
	if !job.HasPage(pageRow, pageCol) {
		return "", ErrPageNotExported
	}
	return p.exporter.PagePath(job.ID, pageRow, pageCol), nil
}

// Start runs the worker loop until ctx is canceled.
func (p *Printing) Start(ctx context.Context) {
	ticker := time.NewTicker(p.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for {
				processed, err := p.ProcessNext(ctx)
				if err != nil {
					p.logger.Error(fmt.Sprintf("Dequeuing print job: %s", err))
					break
				}
				if !processed {
					break
				}
			}
		}
	}
}

// ProcessNext pops one job from the queue and renders it. It reports
// whether a queue entry was consumed.
func (p *Printing) ProcessNext(ctx context.Context) (bool, error) {
	members, err := p.queue.DequeTops(ctx, p.queueKey, 1)
	if err != nil {
		return false, err
	}
	if len(members) == 0 {
		return false, nil
	}

	id, err := uuid.Parse(members[0])
	if err != nil {
		p.logger.Warning(fmt.Sprintf("Non-UUID value in print queue: %s", members[0]))
		return true, nil
	}

	p.process(id)
	return true, nil
}

func (p *Printing) process(id uuid.UUID) {
	job, err := p.jobs.ByID(id)
	if err != nil {
		p.logger.Error(fmt.Sprintf("Loading print job %s: %s", id, err))
		return
	}

	job.Status = domain.JobStatusRendering
	if err := p.jobs.Save(job); err != nil {
		p.logger.Error(fmt.Sprintf("Updating print job %s: %s", id, err))
		return
	}

	if err := p.renderJob(job); err != nil {
		job.Status = domain.JobStatusFailed
		job.Error = err.Error()
		if saveErr := p.jobs.Save(job); saveErr != nil {
			p.logger.Error(fmt.Sprintf("Recording failure of print job %s: %s", id, saveErr))
		}
		p.logger.Error(fmt.Sprintf("Rendering print job %s: %s", id, err))
		return
	}

	job.Status = domain.JobStatusDone
	job.Error = ""
	if err := p.jobs.Save(job); err != nil {
		p.logger.Error(fmt.Sprintf("Completing print job %s: %s", id, err))
		return
	}
	p.logger.Info(fmt.Sprintf("Finished print job %s: %d of %d pages exported", id, len(job.Pages), job.PagesX*job.PagesY))
}

// renderJob runs the full pipeline for one job.
func (p *Printing) renderJob(job *domain.PrintJob) error {
	grid, err := maze.NewGrid(job.Cols, job.Rows)
	if err != nil {
		return err
	}

	seed := job.Seed
	if seed == 0 {
		seed = p.seedSource()
	}
	rng := rand.New(rand.NewSource(seed))
	result := maze.NewGenerator(grid, rng).Generate()

	page := layout.NewPageSpec(job.PageWidthCM, job.PageHeightCM, job.DPI)
	lay, err := layout.New(job.Cols, job.Rows,
		layout.MillimetersToPixels(job.WallWidthMM, job.DPI),
		layout.MillimetersToPixels(job.PathWidthMM, job.DPI),
		page)
	if err != nil {
		return err
	}

	canvas := p.newCanvas(lay.CanvasWidth(), lay.CanvasHeight())
	render.NewRenderer(lay).Draw(canvas, grid, result.Start, result.End)

	if _, err := p.exporter.ExportFull(job.ID, canvas); err != nil {
		return err
	}

	tiles := render.NewSlicer(lay, p.newCanvas).Slice(canvas)

	job.PagesX = lay.PagesX()
	job.PagesY = lay.PagesY()
	job.Pages = job.Pages[:0]
	for _, tile := range tiles {
		if _, err := p.exporter.ExportPage(job.ID, tile.PageRow, tile.PageCol, tile.Canvas); err != nil {
			return err
		}
		job.Pages = append(job.Pages, domain.PageRef{Row: tile.PageRow, Col: tile.PageCol})
	}

	p.logger.Info(fmt.Sprintf("Rendered job %s: longest path %d cells, %dx%d pages", job.ID, result.LongestPath, job.PagesX, job.PagesY))
	return nil
}
