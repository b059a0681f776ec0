package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kolosave/backend/internal/httputil"
	"github.com/kolosave/backend/internal/models"
)

func RegisterGoalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", RequireSession, RequireAdmin, CreateGoal)

	r.OPTIONS("/active", httputil.OptionsGet)
	r.GET("/active", RequireSession, GetActiveGoal)
}

type SavingsGoalEditable struct {
	Title       string    `json:"title" binding:"required" example:"December Cash Out 2026"`                    // Name of the savings cycle
	CashOutDate time.Time `json:"cashOutDate" binding:"required" example:"2026-12-20T00:00:00Z" format:"date"` // When the cycle pays out
}

type SavingsGoalResponse struct {
	Data models.SavingsGoal `json:"data"` // The goal
}

// @Summary		Create goal
// @Description	Starts a new savings cycle. Any previously active cycle is closed in the same transaction, so exactly one cycle is active afterwards.
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	SavingsGoalResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			goal	body		SavingsGoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func CreateGoal(c *gin.Context) {
	var editable SavingsGoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	goal := models.SavingsGoal{
		Title:       editable.Title,
		CashOutDate: editable.CashOutDate,
	}

	if err := models.CreateGoal(models.DB, &goal); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SavingsGoalResponse{Data: goal})
}

// @Summary		Get active goal
// @Description	Returns the currently active savings cycle
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	SavingsGoalResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/goals/active [get]
func GetActiveGoal(c *gin.Context) {
	goal, err := models.ActiveGoal(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SavingsGoalResponse{Data: goal})
}
