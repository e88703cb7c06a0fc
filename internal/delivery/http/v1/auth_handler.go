package v1

import (
	"net/http"

	"simply-jobs-backend/internal/delivery/http/middleware"
	"simply-jobs-backend/internal/delivery/http/response"
	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the account and token routes. Registration and
// the token exchanges are public with the rate limiter as the only gate;
// account deletion requires the caller's own token.
func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/user/register", handler.Register)
	public.POST("/token", handler.Login)
	public.POST("/token/refresh", handler.Refresh)

	protected.DELETE("/user", handler.DeleteAccount)
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,valid_username"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a user with a JOBSEEKER or EMPLOYER profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Account data"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /user/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created", user)
}

// Login godoc
// @Summary      Obtain a token pair
// @Description  Exchange username and password for access and refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.TokenPair}
// @Failure      401   {object}  response.Response
// @Router       /token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", pair)
}

// Refresh godoc
// @Summary      Refresh the token pair
// @Description  Exchange a valid refresh token for a fresh pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RefreshRequest  true  "Refresh token"
// @Success      200   {object}  response.Response{data=domain.TokenPair}
// @Failure      401   {object}  response.Response
// @Router       /token/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUC.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed", pair)
}

// DeleteAccount godoc
// @Summary      Delete my account
// @Description  Remove the authenticated account; its profile, postings and applications cascade
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /user [delete]
// @Security     BearerAuth
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.authUC.DeleteAccount(c.Request.Context(), middleware.IdentityFrom(c)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted", nil)
}
