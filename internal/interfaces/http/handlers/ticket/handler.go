package ticket

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mangedesk/internal/application/ticket/usecases"
	"mangedesk/internal/infrastructure/storage"
	"mangedesk/internal/interfaces/http/handlers/common"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
	"mangedesk/internal/shared/utils"
)

const maxUploadSize = 10 << 20 // 10 MiB per file

type Handler struct {
	createTicketUC       usecases.CreateTicketExecutor
	getTicketUC          usecases.GetTicketExecutor
	listTicketsUC        usecases.ListTicketsExecutor
	updateTicketUC       usecases.UpdateTicketExecutor
	changeStatusUC       usecases.ChangeStatusExecutor
	deleteTicketUC       usecases.DeleteTicketExecutor
	bulkDeleteTicketsUC  usecases.BulkDeleteTicketsExecutor
	assignResponsiblesUC usecases.AssignResponsiblesExecutor
	addCommentUC         usecases.AddCommentExecutor
	addAttachmentUC      usecases.AddAttachmentExecutor
	exportTicketsUC      usecases.ExportTicketsExecutor
	fileStore            *storage.FileStore
	logger               logger.Interface
}

func NewHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	bulkDeleteTicketsUC usecases.BulkDeleteTicketsExecutor,
	assignResponsiblesUC usecases.AssignResponsiblesExecutor,
	addCommentUC usecases.AddCommentExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	exportTicketsUC usecases.ExportTicketsExecutor,
	fileStore *storage.FileStore,
) *Handler {
	return &Handler{
		createTicketUC:       createTicketUC,
		getTicketUC:          getTicketUC,
		listTicketsUC:        listTicketsUC,
		updateTicketUC:       updateTicketUC,
		changeStatusUC:       changeStatusUC,
		deleteTicketUC:       deleteTicketUC,
		bulkDeleteTicketsUC:  bulkDeleteTicketsUC,
		assignResponsiblesUC: assignResponsiblesUC,
		addCommentUC:         addCommentUC,
		addAttachmentUC:      addAttachmentUC,
		exportTicketsUC:      exportTicketsUC,
		fileStore:            fileStore,
		logger:               logger.NewLogger(),
	}
}

type CreateTicketRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	AssetTag      string     `json:"asset_tag"`
	Environment   string     `json:"environment" binding:"required"`
	Urgency       string     `json:"urgency" binding:"required"`
	SuggestedDate *time.Time `json:"suggested_date"`
}

type UpdateTicketRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	AssetTag      string     `json:"asset_tag"`
	Environment   string     `json:"environment" binding:"required"`
	Urgency       string     `json:"urgency" binding:"required"`
	SuggestedDate *time.Time `json:"suggested_date"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
	Note   string `json:"note" form:"note" binding:"required"`
}

type BulkDeleteRequest struct {
	TicketIDs []uint `json:"ticket_ids" binding:"required"`
}

type AssignResponsiblesRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	identity := common.IdentityFromContext(c)

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:         req.Title,
		Description:   req.Description,
		AssetTag:      req.AssetTag,
		Environment:   req.Environment,
		Urgency:       req.Urgency,
		RequesterID:   identity.UserID,
		SuggestedDate: req.SuggestedDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created")
}

func (h *Handler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: id,
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

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Identity:    common.IdentityFromContext(c),
		Status:      c.Query("status"),
		Urgency:     c.Query("urgency"),
		Environment: c.Query("environment"),
		Search:      c.Query("search"),
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:      id,
		Identity:      common.IdentityFromContext(c),
		Title:         req.Title,
		Description:   req.Description,
		AssetTag:      req.AssetTag,
		Environment:   req.Environment,
		Urgency:       req.Urgency,
		SuggestedDate: req.SuggestedDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", result)
}

// ChangeStatus accepts JSON for a plain status change, or multipart form
// data when the change carries proof photos.
func (h *Handler) ChangeStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID: id,
		Identity: common.IdentityFromContext(c),
	}

	if isMultipart(c) {
		var req ChangeStatusRequest
		if err := c.ShouldBind(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "status and note are required")
			return
		}
		cmd.NewStatus = req.Status
		cmd.Note = req.Note

		photos, err := h.savePhotos(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.Photos = photos
	} else {
		var req ChangeStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "status and note are required")
			return
		}
		cmd.NewStatus = req.Status
		cmd.Note = req.Note
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket status changed", result)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *Handler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "ticket_ids is required")
		return
	}

	result, err := h.bulkDeleteTicketsUC.Execute(c.Request.Context(), usecases.BulkDeleteTicketsCommand{
		TicketIDs: req.TicketIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "bulk delete completed", result)
}

func (h *Handler) AssignResponsibles(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignResponsiblesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "user_ids is required")
		return
	}

	result, err := h.assignResponsiblesUC.Execute(c.Request.Context(), usecases.AssignResponsiblesCommand{
		TicketID: id,
		Identity: common.IdentityFromContext(c),
		UserIDs:  req.UserIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "responsibles assigned", result)
}

func (h *Handler) AddComment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "text is required")
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: id,
		Identity: common.IdentityFromContext(c),
		Text:     req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "comment added")
}

func (h *Handler) AddAttachment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		utils.ErrorResponse(c, http.StatusBadRequest, "file exceeds the upload size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	path, err := h.fileStore.Save("attachments", fileHeader.Filename, file)
	if err != nil {
		h.logger.Errorw("failed to store attachment", "ticket_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to store uploaded file"))
		return
	}

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		TicketID:     id,
		Identity:     common.IdentityFromContext(c),
		Path:         path,
		OriginalName: fileHeader.Filename,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "attachment uploaded")
}

func (h *Handler) Export(c *gin.Context) {
	result, err := h.exportTicketsUC.Execute(c.Request.Context(), usecases.ExportTicketsQuery{
		Identity: common.IdentityFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "text/csv", result.Content)
}

func (h *Handler) savePhotos(c *gin.Context) ([]usecases.PhotoInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.NewBadRequestError("invalid multipart form")
	}

	var photos []usecases.PhotoInput
	for _, fileHeader := range form.File["photos"] {
		if fileHeader.Size > maxUploadSize {
			return nil, errors.NewValidationError("photo exceeds the upload size limit")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, errors.NewInternalError("failed to read uploaded photo")
		}

		path, err := h.fileStore.Save("photos", fileHeader.Filename, file)
		file.Close()
		if err != nil {
			return nil, errors.NewInternalError("failed to store uploaded photo")
		}

		photos = append(photos, usecases.PhotoInput{
			Path:         path,
			OriginalName: fileHeader.Filename,
		})
	}

	return photos, nil
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data")
}
