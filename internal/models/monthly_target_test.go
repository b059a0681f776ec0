package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/kolosave/backend/internal/models"
	"github.com/kolosave/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSetTarget() {
	goal := suite.createTestGoal(models.SavingsGoal{})
	month := types.NewMonth(2026, time.September)

	target, err := models.SetTarget(models.DB, goal.ID, month, decimal.NewFromInt(50000))
	suite.Require().NoError(err)
	suite.Assert().Equal(goal.ID, target.GoalID)
	suite.Assert().True(target.Month.Equal(month))
	suite.Assert().True(target.Amount.Equal(decimal.NewFromInt(50000)))
}

func (suite *TestSuiteStandard) TestSetTargetUpsert() {
	goal := suite.createTestGoal(models.SavingsGoal{})
	month := types.NewMonth(2026, time.September)

	first, err := models.SetTarget(models.DB, goal.ID, month, decimal.NewFromInt(50000))
	suite.Require().NoError(err)

	second, err := models.SetTarget(models.DB, goal.ID, month, decimal.NewFromInt(75000))
	suite.Require().NoError(err)

	suite.Assert().Equal(first.ID, second.ID, "Setting a target twice must update the existing row")
	suite.Assert().True(second.Amount.Equal(decimal.NewFromInt(75000)), "Amount is %s, should be 75000", second.Amount)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.MonthlyTarget{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSetTargetPerGoal() {
	first := suite.createTestGoal(models.SavingsGoal{Title: "First Cycle"})
	second := suite.createTestGoal(models.SavingsGoal{Title: "Second Cycle"})
	month := types.NewMonth(2026, time.September)

	_, err := models.SetTarget(models.DB, first.ID, month, decimal.NewFromInt(50000))
	suite.Require().NoError(err)

	// The same month on another goal is a separate target
	_, err = models.SetTarget(models.DB, second.ID, month, decimal.NewFromInt(60000))
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.MonthlyTarget{}).Count(&count).Error)
	suite.Assert().Equal(int64(2), count)
}

func (suite *TestSuiteStandard) TestSetTargetUnknownGoal() {
	_, err := models.SetTarget(models.DB, uuid.New(), types.NewMonth(2026, time.September), decimal.NewFromInt(50000))
	suite.Assert().ErrorIs(err, models.ErrNoSuchGoal)
}

func (suite *TestSuiteStandard) TestSetTargetAmountMustBePositive() {
	goal := suite.createTestGoal(models.SavingsGoal{})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
		_, err := models.SetTarget(models.DB, goal.ID, types.NewMonth(2026, time.September), amount)
		suite.Assert().ErrorIs(err, models.ErrTargetAmountNotPositive)
	}
}

func (suite *TestSuiteStandard) TestTargetForMonth() {
	goal := suite.createTestGoal(models.SavingsGoal{})
	month := types.NewMonth(2026, time.September)

	_, ok, err := models.TargetForMonth(models.DB, goal.ID, month)
	suite.Require().NoError(err)
	suite.Assert().False(ok)

	_, err = models.SetTarget(models.DB, goal.ID, month, decimal.NewFromInt(50000))
	suite.Require().NoError(err)

	target, ok, err := models.TargetForMonth(models.DB, goal.ID, month)
	suite.Require().NoError(err)
	suite.Assert().True(ok)
	suite.Assert().True(target.Amount.Equal(decimal.NewFromInt(50000)))
}
