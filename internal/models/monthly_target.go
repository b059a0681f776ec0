package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kolosave/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MonthlyTarget is the amount the group expects to save in a specific month
// of a savings cycle. There is at most one target per month per goal.
type MonthlyTarget struct {
	DefaultModel
	SavingsGoal SavingsGoal     `json:"-" gorm:"foreignKey:GoalID"`
	GoalID      uuid.UUID       `json:"goalId" gorm:"uniqueIndex:target_goal_month" example:"b9da09d2-fc3c-4f56-9ba1-1d00398899fe"`
	Month       types.Month     `json:"month" gorm:"uniqueIndex:target_goal_month" example:"2026-09-01T00:00:00.000000Z"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50000"`
}

func (t MonthlyTarget) Self() string {
	return "MonthlyTarget"
}

// SetTarget creates or updates the target amount for a month of a goal.
//
// The upsert is keyed on the unique (goal, month) index, so two concurrent
// calls for the same month never produce two rows; the later write wins.
func SetTarget(db *gorm.DB, goalID uuid.UUID, month types.Month, amount decimal.Decimal) (MonthlyTarget, error) {
	if !amount.IsPositive() {
		return MonthlyTarget{}, ErrTargetAmountNotPositive
	}

	_, err := GoalByID(db, goalID.String())
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return MonthlyTarget{}, ErrNoSuchGoal
		}
		return MonthlyTarget{}, err
	}

	target := MonthlyTarget{
		GoalID: goalID,
		Month:  month,
		Amount: amount,
	}

	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "goal_id"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     amount,
			"updated_at": time.Now().In(time.UTC),
		}),
	}).Create(&target).Error
	if err != nil {
		return MonthlyTarget{}, err
	}

	// On conflict the existing row keeps its ID while the BeforeCreate hook
	// has already generated a fresh one on target. The row is read back into
	// a clean value so that the stale ID cannot end up in the query
	// conditions and the caller sees what is actually persisted.
	var persisted MonthlyTarget
	err = db.Where("goal_id = ? AND month = ?", goalID, month).First(&persisted).Error
	return persisted, err
}

// TargetForMonth returns the target for the month of the goal, or false if
// no target has been set.
func TargetForMonth(db *gorm.DB, goalID uuid.UUID, month types.Month) (MonthlyTarget, bool, error) {
	var target MonthlyTarget
	err := db.Where("goal_id = ? AND month = ?", goalID, month).First(&target).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return MonthlyTarget{}, false, nil
		}
		return MonthlyTarget{}, false, err
	}

	return target, true, nil
}
