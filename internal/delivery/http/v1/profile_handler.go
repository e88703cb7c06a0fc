package v1

import (
	"io"
	"net/http"

	"simply-jobs-backend/internal/delivery/http/middleware"
	"simply-jobs-backend/internal/delivery/http/response"
	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/apperror"
	"simply-jobs-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler registers profile routes. The public profile read is the
// only one reachable without a token.
func NewProfileHandler(public, protected, uploads *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	public.GET("/profile/:username", handler.GetProfileByUsername)

	protected.GET("/profile/edit", handler.GetMyProfile)
	protected.PATCH("/profile/edit", handler.EditMyProfile)
	protected.GET("/tutorial_seen", handler.GetTutorialSeen)
	protected.PATCH("/tutorial_seen", handler.MarkTutorialSeen)

	uploads.POST("/profile/resume", handler.UploadResume)
	uploads.POST("/profile/picture", handler.UploadProfilePicture)
}

// EditProfileRequest is a partial update; absent fields stay untouched.
type EditProfileRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,valid_name"`
	LastName    *string `json:"last_name" binding:"omitempty,valid_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,valid_phone"`
	Bio         *string `json:"bio" binding:"omitempty,no_emoji,max=1000"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
}

// GetMyProfile godoc
// @Summary      Get my profile
// @Description  Get the authenticated job seeker's editable profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.JobSeekerProfile}
// @Failure      403  {object}  response.Response
// @Router       /profile/edit [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	profile, err := h.profileUC.GetMyProfile(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// EditMyProfile godoc
// @Summary      Edit my profile
// @Description  Partially update the authenticated job seeker's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      EditProfileRequest  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.JobSeekerProfile}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /profile/edit [patch]
// @Security     BearerAuth
func (h *ProfileHandler) EditMyProfile(c *gin.Context) {
	var req EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	patch := &domain.ProfilePatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		City:        req.City,
		Country:     req.Country,
	}
	profile, err := h.profileUC.EditMyProfile(c.Request.Context(), middleware.IdentityFrom(c), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// GetProfileByUsername godoc
// @Summary      View a job seeker's profile
// @Description  Get a public profile with its education and experience history
// @Tags         profile
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200  {object}  response.Response{data=domain.JobSeekerProfile}
// @Failure      404  {object}  response.Response
// @Router       /profile/{username} [get]
func (h *ProfileHandler) GetProfileByUsername(c *gin.Context) {
	profile, err := h.profileUC.GetProfileByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UploadResume godoc
// @Summary      Upload my resume
// @Description  Attach a pdf or docx resume to the authenticated job seeker's profile
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /profile/resume [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	filename, data, err := readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	url, err := h.profileUC.AttachResume(c.Request.Context(), middleware.IdentityFrom(c), filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", gin.H{"resume": url})
}

// UploadProfilePicture godoc
// @Summary      Upload my profile picture
// @Description  Attach an image to the authenticated job seeker's profile
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /profile/picture [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadProfilePicture(c *gin.Context) {
	filename, data, err := readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	url, err := h.profileUC.AttachProfilePicture(c.Request.Context(), middleware.IdentityFrom(c), filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile picture uploaded", gin.H{"profile_picture": url})
}

// GetTutorialSeen godoc
// @Summary      Get the tutorial flag
// @Description  Whether the authenticated account has dismissed the intro tutorial
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /tutorial_seen [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetTutorialSeen(c *gin.Context) {
	seen, err := h.profileUC.GetTutorialSeen(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Tutorial flag retrieved", gin.H{"has_seen_tutorial": seen})
}

// MarkTutorialSeen godoc
// @Summary      Mark the tutorial as seen
// @Description  Permanently dismiss the intro tutorial for the authenticated account
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /tutorial_seen [patch]
// @Security     BearerAuth
func (h *ProfileHandler) MarkTutorialSeen(c *gin.Context) {
	if err := h.profileUC.MarkTutorialSeen(c.Request.Context(), middleware.IdentityFrom(c)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Tutorial marked as seen", gin.H{"has_seen_tutorial": true})
}

// readUpload pulls the multipart "file" field into memory, bounded one byte
// past the cap so the validator can reject oversized files with a clear
// message.
func readUpload(c *gin.Context) (string, []byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, apperror.BadRequest("file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, apperror.BadRequest("could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxUploadSize+1))
	if err != nil {
		return "", nil, apperror.BadRequest("could not read uploaded file")
	}
	return fileHeader.Filename, data, nil
}
