package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mangedesk/internal/application/dashboard/usecases"
	"mangedesk/internal/interfaces/http/handlers/common"
	"mangedesk/internal/shared/logger"
	"mangedesk/internal/shared/utils"
)

type Handler struct {
	getDashboardUC *usecases.GetDashboardUseCase
	logger         logger.Interface
}

func NewHandler(getDashboardUC *usecases.GetDashboardUseCase) *Handler {
	return &Handler{
		getDashboardUC: getDashboardUC,
		logger:         logger.NewLogger(),
	}
}

func (h *Handler) Get(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{
		Identity: common.IdentityFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
