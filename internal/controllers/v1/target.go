package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kolosave/backend/internal/httputil"
	"github.com/kolosave/backend/internal/models"
	"github.com/kolosave/backend/internal/types"
	"github.com/shopspring/decimal"
)

func RegisterTargetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", RequireSession, RequireAdmin, SetTarget)
}

type MonthlyTargetEditable struct {
	Month  int             `json:"month" binding:"required" example:"9"`                                          // Month of the year, 1-12
	Year   int             `json:"year" binding:"required" example:"2026"`                                        // Calendar year
	Amount decimal.Decimal `json:"amount" binding:"required" example:"50000"`                                     // Target amount for the month
	GoalID uuid.UUID       `json:"goalId" binding:"required" example:"b9da09d2-fc3c-4f56-9ba1-1d00398899fe"` // The savings cycle this target belongs to
}

type MonthlyTargetResponse struct {
	Data models.MonthlyTarget `json:"data"` // The target
}

// @Summary		Set monthly target
// @Description	Creates or updates the target amount for a month of a savings cycle. Setting the same month twice keeps one row with the latest amount.
// @Tags			Targets
// @Produce		json
// @Success		200		{object}	MonthlyTargetResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			target	body		MonthlyTargetEditable	true	"Target"
// @Router			/v1/targets [post]
func SetTarget(c *gin.Context) {
	var editable MonthlyTargetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.Month < 1 || editable.Month > 12 {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrInvalidMonth.Error()})
		return
	}

	month := types.NewMonth(editable.Year, time.Month(editable.Month))

	target, err := models.SetTarget(models.DB, editable.GoalID, month, editable.Amount)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MonthlyTargetResponse{Data: target})
}
