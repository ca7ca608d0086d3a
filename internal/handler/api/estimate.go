package api

import (
	"errors"
	"net/http"

	reqdto "driftwell/internal/handler/dto/request"
	resdto "driftwell/internal/handler/dto/response"
	"driftwell/internal/handler/httperr"
	"driftwell/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	fees commands.FeeCommands
}

func NewEstimateHandler(fees commands.FeeCommands) *EstimateHandler {
	return &EstimateHandler{
		fees: fees,
	}
}

// @Summary Estimate setup fee
// @Description Price the trip from the dispatch point to the given address
// @Tags fees
// @Accept json
// @Produce json
// @Param request body reqdto.EstimateFeeRequest true "Destination address"
// @Success 200 {object} resdto.FeeEstimateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /fees/estimate [post]
func (h *EstimateHandler) EstimateSetupFee(c *gin.Context) {
	var req reqdto.EstimateFeeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	addr, err := req.Address.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		return
	}

	estimate, err := h.fees.EstimateSetupFee(c.Request.Context(), addr)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidAddress):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Address cannot be priced", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFeeEstimate(estimate))
}
