package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kolosave/backend/internal/httputil"
	"github.com/kolosave/backend/internal/models"
	"github.com/shopspring/decimal"
)

func RegisterProgressRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", RequireSession, GetProgress)
}

type ProgressData struct {
	LifetimeTotal      decimal.Decimal     `json:"lifetimeTotal" example:"120000"`      // Everything the user has ever contributed
	CurrentMonthTotal  decimal.Decimal     `json:"currentMonthTotal" example:"20000"`   // Contributions in the current calendar month
	CurrentMonthTarget decimal.Decimal     `json:"currentMonthTarget" example:"50000"`  // Target for the current month, 0 when unset
	ProgressPercent    decimal.Decimal     `json:"progressPercent" example:"40"`        // Month total relative to the target, clamped to [0, 100]
	DaysRemaining      int                 `json:"daysRemaining" example:"54"`          // Whole days until cash-out, negative when the date has passed
	DaysLeft           int                 `json:"daysLeft" example:"54"`               // DaysRemaining floored at zero for display
	Goal               *models.SavingsGoal `json:"goal"`                                // The active savings cycle, null when none exists
}

type ProgressResponse struct {
	Data ProgressData `json:"data"`
}

// @Summary		Get progress
// @Description	Returns the session user's contribution totals and progress against the active savings cycle
// @Tags			Progress
// @Produce		json
// @Success		200	{object}	ProgressResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/progress [get]
func GetProgress(c *gin.Context) {
	progress, err := models.ProgressFor(models.DB, currentUser(c), time.Now())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	daysLeft := progress.DaysRemaining
	if daysLeft < 0 {
		daysLeft = 0
	}

	c.JSON(http.StatusOK, ProgressResponse{
		Data: ProgressData{
			LifetimeTotal:      progress.LifetimeTotal,
			CurrentMonthTotal:  progress.MonthTotal,
			CurrentMonthTarget: progress.MonthTarget,
			ProgressPercent:    progress.Percent,
			DaysRemaining:      progress.DaysRemaining,
			DaysLeft:           daysLeft,
			Goal:               progress.Goal,
		},
	})
}
