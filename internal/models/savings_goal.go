package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// SavingsGoal is a savings cycle with a cash-out date. At most one goal is
// active at any time; the active goal is the one open for contributions and
// target-setting.
type SavingsGoal struct {
	DefaultModel
	Title          string          `json:"title" example:"December Cash Out 2026"`
	CashOutDate    time.Time       `json:"cashOutDate" example:"2026-12-20T00:00:00Z"`
	Active         bool            `json:"active" example:"true"`
	MonthlyTargets []MonthlyTarget `json:"-" gorm:"foreignKey:GoalID"`
}

func (g SavingsGoal) Self() string {
	return "SavingsGoal"
}

func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if err := g.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	g.Title = strings.TrimSpace(g.Title)

	if g.Title == "" {
		return ErrGoalTitleRequired
	}

	if g.CashOutDate.IsZero() {
		return ErrGoalCashOutDateUnset
	}

	return nil
}

// CreateGoal starts a new savings cycle.
//
// Deactivating the previous cycle and creating the new one happen in a single
// transaction so that a concurrent reader always observes exactly one active
// goal once the first cycle exists.
func CreateGoal(db *gorm.DB, goal *SavingsGoal) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&SavingsGoal{}).Where("active = ?", true).Update("active", false).Error
		if err != nil {
			return err
		}

		goal.Active = true
		return tx.Create(goal).Error
	})
}

// ActiveGoal returns the currently active savings cycle.
// Before the first administrator setup there is none, which surfaces as
// ErrResourceNotFound.
func ActiveGoal(db *gorm.DB) (SavingsGoal, error) {
	var goal SavingsGoal
	err := db.Where(&SavingsGoal{Active: true}).First(&goal).Error
	return goal, err
}

// GoalByID returns the goal with the ID given.
func GoalByID(db *gorm.DB, id string) (SavingsGoal, error) {
	var goal SavingsGoal
	err := db.Where("id = ?", id).First(&goal).Error
	return goal, err
}
