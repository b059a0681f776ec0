package models

import (
	"errors"
	"math"
	"time"

	"github.com/kolosave/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var percentCap = decimal.NewFromInt(100)

// Progress summarizes a user's contributions against the active savings
// cycle at a point in time.
type Progress struct {
	LifetimeTotal decimal.Decimal // Sum of all contributions of the user
	MonthTotal    decimal.Decimal // Sum of the user's contributions in the current month
	MonthTarget   decimal.Decimal // Target for the current month, zero when unset
	Percent       decimal.Decimal // MonthTotal relative to MonthTarget, clamped to [0, 100]
	DaysRemaining int             // Whole days until the cash-out date, negative when passed
	Goal          *SavingsGoal    // The active goal, nil when none exists
}

// ProgressFor computes the savings progress of a user as of the given time.
// The current month is determined by the local date of the evaluating
// process, not by any metadata on the contributions.
func ProgressFor(db *gorm.DB, user User, now time.Time) (Progress, error) {
	progress := Progress{
		LifetimeTotal: decimal.Zero,
		MonthTotal:    decimal.Zero,
		MonthTarget:   decimal.Zero,
		Percent:       decimal.Zero,
	}

	var contributions []Contribution
	err := db.Where(&Contribution{UserID: user.ID}).Find(&contributions).Error
	if err != nil {
		return Progress{}, err
	}

	month := types.MonthOf(now)
	for _, contribution := range contributions {
		progress.LifetimeTotal = progress.LifetimeTotal.Add(contribution.Amount)

		if month.Contains(contribution.CreatedAt) {
			progress.MonthTotal = progress.MonthTotal.Add(contribution.Amount)
		}
	}

	goal, err := ActiveGoal(db)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return progress, nil
		}
		return Progress{}, err
	}

	progress.Goal = &goal
	progress.DaysRemaining = daysUntil(goal.CashOutDate, now)

	target, ok, err := TargetForMonth(db, goal.ID, month)
	if err != nil {
		return Progress{}, err
	}
	if ok {
		progress.MonthTarget = target.Amount
	}

	// A zero or absent target means no progress to measure. Guarding here
	// also keeps the division below well-defined.
	if progress.MonthTarget.IsPositive() {
		percent := progress.MonthTotal.Div(progress.MonthTarget).Mul(percentCap)
		if percent.GreaterThan(percentCap) {
			percent = percentCap
		}
		progress.Percent = percent
	}

	return progress, nil
}

// daysUntil returns the number of whole days from now until the date,
// rounding partial days up.
func daysUntil(date, now time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}
