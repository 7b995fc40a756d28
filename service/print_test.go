package service

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/beka-birhanu/mazeprint-api/domain"
	"github.com/beka-birhanu/mazeprint-api/infrastruture/canvas"
	"github.com/beka-birhanu/mazeprint-api/render"
)

type fakeJobRepo struct {
	jobs map[uuid.UUID]*domain.PrintJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*domain.PrintJob)}
}

func (r *fakeJobRepo) Save(job *domain.PrintJob) error {
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) ByID(id uuid.UUID) (*domain.PrintJob, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) ByOwner(ownerID uuid.UUID) ([]*domain.PrintJob, error) {
	var out []*domain.PrintJob
	for _, job := range r.jobs {
		if job.OwnerID == ownerID {
			copied := *job
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

type queueEntry struct {
	score  float64
	member string
}

type fakeQueue struct {
	entries []queueEntry
}

func (q *fakeQueue) Enqueue(_ context.Context, _ string, score float64, member string) error {
	q.entries = append(q.entries, queueEntry{score: score, member: member})
	sort.Slice(q.entries, func(a, b int) bool { return q.entries[a].score < q.entries[b].score })
	return nil
}

func (q *fakeQueue) DequeTops(_ context.Context, _ string, amount int64) ([]string, error) {
	n := int(amount)
	if n > len(q.entries) {
		n = len(q.entries)
	}
	members := make([]string, 0, n)
	for _, e := range q.entries[:n] {
		members = append(members, e.member)
	}
	q.entries = q.entries[n:]
	return members, nil
}

func (q *fakeQueue) Count(context.Context, string) int64 {
	return int64(len(q.entries))
}

type fakeExporter struct {
	fullErr   error
	fullSaved map[uuid.UUID]bool
	pages     map[string]render.Canvas
}

func newFakeExporter() *fakeExporter {
	return &fakeExporter{
		fullSaved: make(map[uuid.UUID]bool),
		pages:     make(map[string]render.Canvas),
	}
}

func (e *fakeExporter) ExportPage(jobID uuid.UUID, pageRow, pageCol int, c render.Canvas) (string, error) {
	path := e.PagePath(jobID, pageRow, pageCol)
	e.pages[path] = c
	return path, nil
}

func (e *fakeExporter) ExportFull(jobID uuid.UUID, _ render.Canvas) (string, error) {
	if e.fullErr != nil {
		return "", e.fullErr
	}
	e.fullSaved[jobID] = true
	return jobID.String() + "/maze.jpg", nil
}

func (e *fakeExporter) PagePath(jobID uuid.UUID, pageRow, pageCol int) string {
	return fmt.Sprintf("%s/maze-slice-%d-%d.jpg", jobID, pageRow, pageCol)
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func testPrinting(t *testing.T, repo *fakeJobRepo, queue *fakeQueue, exporter *fakeExporter) *Printing {
	t.Helper()
	p, err := NewPrinting(&PrintingConfig{
		Jobs:      repo,
		Queue:     queue,
		Exporter:  exporter,
		NewCanvas: canvas.NewFactory(color.White),
		Logger:    nopLogger{},
	})
	assert.NoError(t, err)
	return p
}

func testJob(t *testing.T) *domain.PrintJob {
	t.Helper()
	job, err := domain.NewPrintJob(domain.PrintJobConfig{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Cols:    4,
		Rows:    3,
		// 10px walls and 5px paths at 254 DPI, canvas 65x50, 20px pages.
		WallWidthMM:  1,
		PathWidthMM:  0.5,
		DPI:          254,
		PageWidthCM:  0.2,
		PageHeightCM: 0.2,
		Seed:         42,
	})
	assert.NoError(t, err)
	return job
}

func TestSubmit(t *testing.T) {
	t.Run("Persists and enqueues the job", func(t *testing.T) {
		repo, queue, exporter := newFakeJobRepo(), &fakeQueue{}, newFakeExporter()
		p := testPrinting(t, repo, queue, exporter)

		job := testJob(t)
		assert.NoError(t, p.Submit(context.Background(), job))

		saved, err := repo.ByID(job.ID)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusQueued, saved.Status)

		assert.Len(t, queue.entries, 1)
		assert.Equal(t, job.ID.String(), queue.entries[0].member)
	})

	t.Run("Rejects invalid configuration before storing", func(t *testing.T) {
		repo, queue, exporter := newFakeJobRepo(), &fakeQueue{}, newFakeExporter()
		p := testPrinting(t, repo, queue, exporter)

		job := testJob(t)
		job.Cols = 0
		assert.ErrorIs(t, p.Submit(context.Background(), job), domain.ErrInvalidJobConfig)
		assert.Empty(t, repo.jobs)
		assert.Empty(t, queue.entries)
	})
}

func TestProcessNext(t *testing.T) {
	t.Run("Empty queue consumes nothing", func(t *testing.T) {
		p := testPrinting(t, newFakeJobRepo(), &fakeQueue{}, newFakeExporter())

		processed, err := p.ProcessNext(context.Background())
		assert.NoError(t, err)
		assert.False(t, processed)
	})

	t.Run("Renders a queued job to completion", func(t *testing.T) {
		repo, queue, exporter := newFakeJobRepo(), &fakeQueue{}, newFakeExporter()
		p := testPrinting(t, repo, queue, exporter)

		job := testJob(t)
		assert.NoError(t, p.Submit(context.Background(), job))

		processed, err := p.ProcessNext(context.Background())
		assert.NoError(t, err)
		assert.True(t, processed)

		done, err := repo.ByID(job.ID)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusDone, done.Status)
		assert.Empty(t, done.Error)

		// 65x50 canvas on 20px pages.
		assert.Equal(t, 4, done.PagesX)
		assert.Equal(t, 3, done.PagesY)
		assert.NotEmpty(t, done.Pages)
		assert.True(t, exporter.fullSaved[job.ID])

		for _, page := range done.Pages {
			path := exporter.PagePath(job.ID, page.Row, page.Col)
			c, ok := exporter.pages[path]
			assert.True(t, ok, "page %v was not exported", page)
			assert.Equal(t, 20, c.Width())
			assert.Equal(t, 20, c.Height())
		}

		// PagePath answers for exported pages only.
		path, err := p.PagePath(done, done.Pages[0].Row, done.Pages[0].Col)
		assert.NoError(t, err)
		assert.NotEmpty(t, path)

		_, err = p.PagePath(done, 99, 99)
		assert.ErrorIs(t, err, ErrPageNotExported)
	})

	t.Run("Marks the job failed when export breaks", func(t *testing.T) {
		repo, queue, exporter := newFakeJobRepo(), &fakeQueue{}, newFakeExporter()
		exporter.fullErr = errors.New("disk full")
		p := testPrinting(t, repo, queue, exporter)

		job := testJob(t)
		assert.NoError(t, p.Submit(context.Background(), job))

		processed, err := p.ProcessNext(context.Background())
		assert.NoError(t, err)
		assert.True(t, processed)

		failed, err := repo.ByID(job.ID)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusFailed, failed.Status)
		assert.Equal(t, "disk full", failed.Error)
	})

	t.Run("Skips queue entries that are not job IDs", func(t *testing.T) {
		repo, queue, exporter := newFakeJobRepo(), &fakeQueue{}, newFakeExporter()
		p := testPrinting(t, repo, queue, exporter)

		assert.NoError(t, queue.Enqueue(context.Background(), "", 1, "not-a-uuid"))

		processed, err := p.ProcessNext(context.Background())
		assert.NoError(t, err)
		assert.True(t, processed)
		assert.Empty(t, repo.jobs)
	})
}
