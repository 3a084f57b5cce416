package asset

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mangedesk/internal/application/asset/usecases"
	"mangedesk/internal/interfaces/http/handlers/common"
	"mangedesk/internal/shared/logger"
	"mangedesk/internal/shared/utils"
)

type Handler struct {
	createAssetUC    usecases.CreateAssetExecutor
	getAssetUC       usecases.GetAssetExecutor
	listAssetsUC     usecases.ListAssetsExecutor
	updateAssetUC    usecases.UpdateAssetExecutor
	deleteAssetUC    usecases.DeleteAssetExecutor
	recordMovementUC usecases.RecordMovementExecutor
	logger           logger.Interface
}

func NewHandler(
	createAssetUC usecases.CreateAssetExecutor,
	getAssetUC usecases.GetAssetExecutor,
	listAssetsUC usecases.ListAssetsExecutor,
	updateAssetUC usecases.UpdateAssetExecutor,
	deleteAssetUC usecases.DeleteAssetExecutor,
	recordMovementUC usecases.RecordMovementExecutor,
) *Handler {
	return &Handler{
		createAssetUC:    createAssetUC,
		getAssetUC:       getAssetUC,
		listAssetsUC:     listAssetsUC,
		updateAssetUC:    updateAssetUC,
		deleteAssetUC:    deleteAssetUC,
		recordMovementUC: recordMovementUC,
		logger:           logger.NewLogger(),
	}
}

type CreateAssetRequest struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	SerialNumber string `json:"serial_number"`
	Supplier     string `json:"supplier"`
	Environment  string `json:"environment"`
}

type UpdateAssetRequest struct {
	Name         string `json:"name" binding:"required"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	SerialNumber string `json:"serial_number"`
	Supplier     string `json:"supplier"`
	Environment  string `json:"environment"`
	Status       string `json:"status"`
}

type RecordMovementRequest struct {
	MovementType string `json:"movement_type" binding:"required"`
	Description  string `json:"description"`
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create asset", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createAssetUC.Execute(c.Request.Context(), usecases.CreateAssetCommand{
		Identity:     common.IdentityFromContext(c),
		Code:         req.Code,
		Name:         req.Name,
		Model:        req.Model,
		Manufacturer: req.Manufacturer,
		SerialNumber: req.SerialNumber,
		Supplier:     req.Supplier,
		Environment:  req.Environment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "asset created")
}

func (h *Handler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAssetUC.Execute(c.Request.Context(), usecases.GetAssetQuery{AssetID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetByCode resolves an asset from its printed code, the lookup QR tags
// point at.
func (h *Handler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "asset code is required")
		return
	}

	result, err := h.getAssetUC.Execute(c.Request.Context(), usecases.GetAssetQuery{Code: code})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listAssetsUC.Execute(c.Request.Context(), usecases.ListAssetsQuery{
		Status:      c.Query("status"),
		Environment: c.Query("environment"),
		Search:      c.Query("search"),
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update asset", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateAssetUC.Execute(c.Request.Context(), usecases.UpdateAssetCommand{
		AssetID:      id,
		Identity:     common.IdentityFromContext(c),
		Name:         req.Name,
		Model:        req.Model,
		Manufacturer: req.Manufacturer,
		SerialNumber: req.SerialNumber,
		Supplier:     req.Supplier,
		Environment:  req.Environment,
		Status:       req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "asset updated", result)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteAssetUC.Execute(c.Request.Context(), usecases.DeleteAssetCommand{
		AssetID:  id,
		Identity: common.IdentityFromContext(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *Handler) RecordMovement(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "movement_type is required")
		return
	}

	result, err := h.recordMovementUC.Execute(c.Request.Context(), usecases.RecordMovementCommand{
		AssetID:      id,
		Identity:     common.IdentityFromContext(c),
		MovementType: req.MovementType,
		Description:  req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "movement recorded")
}
