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

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes.
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	r.POST("/jobs/apply", handler.ApplyToJob)
	r.GET("/jobs/:id/applicants", handler.ListApplicants)
	r.PUT("/applications/update", handler.UpdateStatus)
	r.GET("/applied", handler.ListMyApplications)
	r.DELETE("/applied/:id", handler.DeleteApplication)
}

type ApplyRequest struct {
	JobID int64 `json:"job" binding:"required"`
}

// UpdateStatusRequest carries the bulk status change an employer submits
// from the applicant review screen.
type UpdateStatusRequest struct {
	ApplicationIDs []int64 `json:"application_ids" binding:"required"`
	Status         string  `json:"status" binding:"required"`
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submit an application for a posting (job seeker only, one per job)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Target job"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), middleware.IdentityFrom(c), req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListApplicants godoc
// @Summary      List a job's applicants
// @Description  Get the applications for one of the employer's own postings, optionally filtered by status
// @Tags         applications
// @Produce      json
// @Param        id      path      int     true   "Job ID"
// @Param        status  query     string  false  "PENDING, SHORTLISTED or REJECTED"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applicants [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var status *string
	if v, ok := c.GetQuery("status"); ok {
		status = &v
	}

	apps, err := h.applicationUC.ListApplicants(c.Request.Context(), middleware.IdentityFrom(c), jobID, status)
	if err != nil {
		c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}

	response.Success(c, http.StatusOK, "Applicants retrieved", apps)
}

// UpdateStatus godoc
// @Summary      Bulk-update application statuses
// @Description  Set the status on applications under the employer's own postings; returns how many rows changed
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateStatusRequest  true  "Applications and target status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /applications/update [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.applicationUC.UpdateStatus(c.Request.Context(), middleware.IdentityFrom(c), req.ApplicationIDs, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications updated", gin.H{"updated": updated})
}

// ListMyApplications godoc
// @Summary      List my applications
// @Description  Get the authenticated job seeker's applications, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /applied [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	apps, err := h.applicationUC.ListMyApplications(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// DeleteApplication godoc
// @Summary      Withdraw an application
// @Description  Delete one of the authenticated job seeker's own applications
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applied/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	if err := h.applicationUC.DeleteApplication(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}
