package printing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beka-birhanu/mazeprint-api/api/identity"
	"github.com/beka-birhanu/mazeprint-api/domain"
	"github.com/beka-birhanu/mazeprint-api/service/i"
)

// Defaults applied to job fields the request leaves at zero.
type Defaults struct {
	WallWidthMM  float64
	PathWidthMM  float64
	DPI          int
	PageWidthCM  float64
	PageHeightCM float64
}

// PrintServer handles HTTP requests for print jobs.
type PrintServer struct {
	jobs     i.PrintJobManager
	defaults Defaults
}

// NewPrintServer creates a new PrintServer.
func NewPrintServer(jobs i.PrintJobManager, defaults Defaults) *PrintServer {
	return &PrintServer{
		jobs:     jobs,
		defaults: defaults,
	}
}

// RegisterPublic registers public routes.
func (c *PrintServer) RegisterPublic(route *gin.RouterGroup) {
}

// RegisterProtected registers privileged routes.
func (c *PrintServer) RegisterProtected(route *gin.RouterGroup) {
	jobs := route.Group("/print-jobs")
	{
		jobs.POST("", c.createJob)
		jobs.GET("", c.listJobs)
		jobs.GET("/:id", c.getJob)
		jobs.GET("/:id/pages/:row/:col", c.getPage)
	}
}

// createJob accepts a new print job and queues it for rendering.
func (c *PrintServer) createJob(ctx *gin.Context) {
	ownerID, ok := callerID(ctx)
	if !ok {
		return
	}

	var request CreateJobRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.applyDefaults(&request)

	job, err := domain.NewPrintJob(domain.PrintJobConfig{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Cols:         request.Cols,
		Rows:         request.Rows,
		WallWidthMM:  request.WallWidthMM,
		PathWidthMM:  request.PathWidthMM,
		DPI:          request.DPI,
		PageWidthCM:  request.PageWidthCM,
		PageHeightCM: request.PageHeightCM,
		Seed:         request.Seed,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.jobs.Submit(ctx.Request.Context(), job); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusAccepted, toJobResponse(job))
}

// listJobs returns the caller's print jobs, newest first.
func (c *PrintServer) listJobs(ctx *gin.Context) {
	ownerID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobs, err := c.jobs.JobsFor(ownerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, toJobResponse(job))
	}
	ctx.JSON(http.StatusOK, responses)
}

// getJob returns one of the caller's print jobs.
func (c *PrintServer) getJob(ctx *gin.Context) {
	job, ok := c.ownedJob(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, toJobResponse(job))
}

// getPage serves one exported page of a finished job.
func (c *PrintServer) getPage(ctx *gin.Context) {
	job, ok := c.ownedJob(ctx)
	if !ok {
		return
	}

	row, err := strconv.Atoi(ctx.Param("row"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "page row must be an integer"})
		return
	}
	col, err := strconv.Atoi(ctx.Param("col"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "page column must be an integer"})
		return
	}

	path, err := c.jobs.PagePath(job, row, col)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.File(path)
}

// ownedJob loads the job from the :id param and checks it belongs to the
// caller. Jobs of other users are reported as not found.
func (c *PrintServer) ownedJob(ctx *gin.Context) (*domain.PrintJob, bool) {
	ownerID, ok := callerID(ctx)
	if !ok {
		return nil, false
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "job id must be a UUID"})
		return nil, false
	}

	job, err := c.jobs.Job(id)
	if err != nil || job.OwnerID != ownerID {
		ctx.Status(http.StatusNotFound)
		return nil, false
	}
	return job, true
}

// applyDefaults fills zero-valued print parameters from the server defaults.
func (c *PrintServer) applyDefaults(request *CreateJobRequest) {
	if request.WallWidthMM == 0 {
		request.WallWidthMM = c.defaults.WallWidthMM
	}
	if request.PathWidthMM == 0 {
		request.PathWidthMM = c.defaults.PathWidthMM
	}
	if request.DPI == 0 {
		request.DPI = c.defaults.DPI
	}
	if request.PageWidthCM == 0 {
		request.PageWidthCM = c.defaults.PageWidthCM
	}
	if request.PageHeightCM == 0 {
		request.PageHeightCM = c.defaults.PageHeightCM
	}
}

// callerID extracts the authenticated user's ID from the claims attached by
// the authorization middleware.
func callerID(ctx *gin.Context) (uuid.UUID, bool) {
	claims, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	claimsMap, ok := claims.(map[string]interface{})
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	idStr, ok := claimsMap["userID"].(string)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}
