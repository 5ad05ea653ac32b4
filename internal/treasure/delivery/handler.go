package delivery

import (
	"net/http"

	treasuredto "kitra-backend/internal/treasure/dto"
	"kitra-backend/internal/treasure/usecase"
	"kitra-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type TreasureHandler struct {
	treasureUsecase usecase.TreasureUsecase
}

func NewTreasureHandler(treasureUsecase usecase.TreasureUsecase) *TreasureHandler {
	return &TreasureHandler{
		treasureUsecase: treasureUsecase,
	}
}

// GetTreasures serves both the public and the token-gated treasure search;
// the gate, when present, runs before this handler.
func (h *TreasureHandler) GetTreasures(c *gin.Context) {
	q, fieldErrs := treasuredto.ParseTreasureQuery(c.Request.URL.Query())
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{Errors: fieldErrs})
		return
	}

	results, err := h.treasureUsecase.FindNear(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}

	message := "Results found"
	if len(results) == 0 {
		message = "No results found"
	}

	c.JSON(http.StatusOK, treasuredto.TreasureListResponse{
		Status:  "success",
		Message: message,
		Data:    results,
	})
}
