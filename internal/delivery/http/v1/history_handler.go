package v1

import (
	"net/http"
	"strconv"
	"time"

	"simply-jobs-backend/internal/delivery/http/middleware"
	"simply-jobs-backend/internal/delivery/http/response"
	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	profileUC domain.ProfileUsecase
}

// NewHistoryHandler registers the education and experience routes. Every
// route operates on the authenticated job seeker's own records.
func NewHistoryHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &HistoryHandler{profileUC: profileUC}

	r.GET("/educations", handler.ListEducations)
	r.POST("/educations", handler.AddEducation)
	r.GET("/educations/:id", handler.GetEducation)
	r.PUT("/educations/:id", handler.UpdateEducation)
	r.PATCH("/educations/:id", handler.UpdateEducation)
	r.DELETE("/educations/:id", handler.DeleteEducation)

	r.GET("/experiences", handler.ListExperiences)
	r.POST("/experiences", handler.AddExperience)
	r.GET("/experiences/:id", handler.GetExperience)
	r.PUT("/experiences/:id", handler.UpdateExperience)
	r.PATCH("/experiences/:id", handler.UpdateExperience)
	r.DELETE("/experiences/:id", handler.DeleteExperience)
}

type EducationRequest struct {
	School       string     `json:"school" binding:"required"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

// EducationPatchRequest is the update payload; absent fields keep their
// stored value, so PUT and PATCH behave alike.
type EducationPatchRequest struct {
	School       *string    `json:"school"`
	Degree       *string    `json:"degree"`
	FieldOfStudy *string    `json:"field_of_study"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

type ExperienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	JobType     string     `json:"job_type"`
	Company     string     `json:"company"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
}

type ExperiencePatchRequest struct {
	Title       *string    `json:"title"`
	JobType     *string    `json:"job_type"`
	Company     *string    `json:"company"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description"`
}

// ListEducations godoc
// @Summary      List my education records
// @Tags         history
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Education}
// @Failure      403  {object}  response.Response
// @Router       /educations [get]
// @Security     BearerAuth
func (h *HistoryHandler) ListEducations(c *gin.Context) {
	educations, err := h.profileUC.ListEducations(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	if educations == nil {
		educations = []domain.Education{}
	}

	response.Success(c, http.StatusOK, "Educations retrieved", educations)
}

// AddEducation godoc
// @Summary      Add an education record
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        body  body      EducationRequest  true  "Education data"
// @Success      201   {object}  response.Response{data=domain.Education}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /educations [post]
// @Security     BearerAuth
func (h *HistoryHandler) AddEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	edu := &domain.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := h.profileUC.AddEducation(c.Request.Context(), middleware.IdentityFrom(c), edu); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education added", edu)
}

// GetEducation godoc
// @Summary      Get one of my education records
// @Tags         history
// @Produce      json
// @Param        id  path      int  true  "Education ID"
// @Success      200  {object}  response.Response{data=domain.Education}
// @Failure      404  {object}  response.Response
// @Router       /educations/{id} [get]
// @Security     BearerAuth
func (h *HistoryHandler) GetEducation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid education ID"))
		return
	}

	edu, err := h.profileUC.GetEducation(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education retrieved", edu)
}

// UpdateEducation godoc
// @Summary      Update one of my education records
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Education ID"
// @Param        body  body      EducationPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Education}
// @Failure      404   {object}  response.Response
// @Router       /educations/{id} [put]
// @Security     BearerAuth
func (h *HistoryHandler) UpdateEducation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid education ID"))
		return
	}

	var req EducationPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	edu, err := h.profileUC.GetEducation(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	if req.School != nil {
		edu.School = *req.School
	}
	if req.Degree != nil {
		edu.Degree = *req.Degree
	}
	if req.FieldOfStudy != nil {
		edu.FieldOfStudy = *req.FieldOfStudy
	}
	if req.StartDate != nil {
		edu.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		edu.EndDate = req.EndDate
	}

	if err := h.profileUC.UpdateEducation(c.Request.Context(), middleware.IdentityFrom(c), edu); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", edu)
}

// DeleteEducation godoc
// @Summary      Delete one of my education records
// @Tags         history
// @Produce      json
// @Param        id  path      int  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /educations/{id} [delete]
// @Security     BearerAuth
func (h *HistoryHandler) DeleteEducation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid education ID"))
		return
	}

	if err := h.profileUC.DeleteEducation(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education deleted", nil)
}

// ListExperiences godoc
// @Summary      List my experience records
// @Tags         history
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Experience}
// @Failure      403  {object}  response.Response
// @Router       /experiences [get]
// @Security     BearerAuth
func (h *HistoryHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.profileUC.ListExperiences(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	if experiences == nil {
		experiences = []domain.Experience{}
	}

	response.Success(c, http.StatusOK, "Experiences retrieved", experiences)
}

// AddExperience godoc
// @Summary      Add an experience record
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        body  body      ExperienceRequest  true  "Experience data"
// @Success      201   {object}  response.Response{data=domain.Experience}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /experiences [post]
// @Security     BearerAuth
func (h *HistoryHandler) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	exp := &domain.Experience{
		Title:       req.Title,
		JobType:     req.JobType,
		Company:     req.Company,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	if err := h.profileUC.AddExperience(c.Request.Context(), middleware.IdentityFrom(c), exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience added", exp)
}

// GetExperience godoc
// @Summary      Get one of my experience records
// @Tags         history
// @Produce      json
// @Param        id  path      int  true  "Experience ID"
// @Success      200  {object}  response.Response{data=domain.Experience}
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [get]
// @Security     BearerAuth
func (h *HistoryHandler) GetExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid experience ID"))
		return
	}

	exp, err := h.profileUC.GetExperience(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience retrieved", exp)
}

// UpdateExperience godoc
// @Summary      Update one of my experience records
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Experience ID"
// @Param        body  body      ExperiencePatchRequest  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Experience}
// @Failure      404   {object}  response.Response
// @Router       /experiences/{id} [put]
// @Security     BearerAuth
func (h *HistoryHandler) UpdateExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid experience ID"))
		return
	}

	var req ExperiencePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	exp, err := h.profileUC.GetExperience(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	if req.Title != nil {
		exp.Title = *req.Title
	}
	if req.JobType != nil {
		exp.JobType = *req.JobType
	}
	if req.Company != nil {
		exp.Company = *req.Company
	}
	if req.StartDate != nil {
		exp.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		exp.EndDate = req.EndDate
	}
	if req.Description != nil {
		exp.Description = *req.Description
	}

	if err := h.profileUC.UpdateExperience(c.Request.Context(), middleware.IdentityFrom(c), exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", exp)
}

// DeleteExperience godoc
// @Summary      Delete one of my experience records
// @Tags         history
// @Produce      json
// @Param        id  path      int  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [delete]
// @Security     BearerAuth
func (h *HistoryHandler) DeleteExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid experience ID"))
		return
	}

	if err := h.profileUC.DeleteExperience(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", nil)
}
