package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mangedesk/internal/application/user/usecases"
	"mangedesk/internal/interfaces/http/handlers/common"
	"mangedesk/internal/shared/logger"
	"mangedesk/internal/shared/utils"
)

type Handler struct {
	registerUserUC         usecases.RegisterUserExecutor
	loginUC                usecases.LoginExecutor
	requestPasswordResetUC usecases.RequestPasswordResetExecutor
	resetPasswordUC        usecases.ResetPasswordExecutor
	getUserUC              usecases.GetUserExecutor
	listUsersUC            usecases.ListUsersExecutor
	deleteUserUC           usecases.DeleteUserExecutor
	logger                 logger.Interface
}

func NewHandler(
	registerUserUC usecases.RegisterUserExecutor,
	loginUC usecases.LoginExecutor,
	requestPasswordResetUC usecases.RequestPasswordResetExecutor,
	resetPasswordUC usecases.ResetPasswordExecutor,
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
) *Handler {
	return &Handler{
		registerUserUC:         registerUserUC,
		loginUC:                loginUC,
		requestPasswordResetUC: requestPasswordResetUC,
		resetPasswordUC:        resetPasswordUC,
		getUserUC:              getUserUC,
		listUsersUC:            listUsersUC,
		deleteUserUC:           deleteUserUC,
		logger:                 logger.NewLogger(),
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerUserUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "account created")
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "login and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var req RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.requestPasswordResetUC.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{
		Email: req.Email,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Same answer whether or not the address exists.
	utils.SuccessResponse(c, http.StatusOK, "if the address is registered, a reset email has been sent", nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "token and new_password are required")
		return
	}

	if err := h.resetPasswordUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password updated", nil)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID:   id,
		Identity: common.IdentityFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Identity: common.IdentityFromContext(c),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:   id,
		Identity: common.IdentityFromContext(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
