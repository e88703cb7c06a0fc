package v1

import (
	"net/http"
	"strconv"

	"simply-jobs-backend/internal/delivery/http/middleware"
	"simply-jobs-backend/internal/delivery/http/response"
	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes. Listing sits on the optional-auth
// group so anonymous visitors can browse; posting and deleting require a
// token.
func NewJobHandler(public, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.ListJobs)
	protected.POST("/jobs", handler.CreateJob)
	protected.DELETE("/jobs/:id", handler.DeleteJob)
}

// CreateJobRequest is the payload for posting a job.
type CreateJobRequest struct {
	Company     string `json:"company" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      int64  `json:"salary"`
	JobType     string `json:"job_type"`
}

// ListJobs godoc
// @Summary      List job postings
// @Description  Anonymous callers and job seekers see all postings; an authenticated employer sees only their own
// @Tags         jobs
// @Produce      json
// @Param        company   query     string  false  "Filter by company"
// @Param        job_type  query     string  false  "Filter by job type"
// @Param        location  query     string  false  "Filter by location"
// @Param        salary    query     int     false  "Filter by salary"
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := &domain.JobFilter{}
	if v, ok := c.GetQuery("company"); ok {
		filter.Company = &v
	}
	if v, ok := c.GetQuery("job_type"); ok {
		filter.JobType = &v
	}
	if v, ok := c.GetQuery("location"); ok {
		filter.Location = &v
	}
	if v, ok := c.GetQuery("salary"); ok {
		salary, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("salary filter must be a number"))
			return
		}
		filter.Salary = &salary
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), middleware.IdentityFrom(c), filter)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// CreateJob godoc
// @Summary      Post a job
// @Description  Create a job posting owned by the authenticated employer
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      CreateJobRequest  true  "Job data"
// @Success      201   {object}  response.Response{data=domain.Job}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Company:     req.Company,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		JobType:     req.JobType,
	}
	if err := h.jobUC.CreateJob(c.Request.Context(), middleware.IdentityFrom(c), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Remove one of the authenticated employer's own postings
// @Tags         jobs
// @Produce      json
// @Param        id  path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), middleware.IdentityFrom(c), jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
