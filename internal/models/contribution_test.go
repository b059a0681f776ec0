package models_test

import (
	"sync"

	"github.com/google/uuid"
	"github.com/kolosave/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRecordContribution() {
	user := suite.createTestUser(models.User{Email: "adaeze@example.com"})

	contribution, created, err := models.RecordContribution(models.DB, models.PaymentEvent{
		TransactionReference: "PP-9f86d081884c",
		Amount:               decimal.NewFromInt(20000),
		PayerEmail:           "adaeze@example.com",
	})

	suite.Require().NoError(err)
	suite.Assert().True(created)
	suite.Assert().Equal(user.ID, contribution.UserID)
	suite.Assert().True(contribution.Amount.Equal(decimal.NewFromInt(20000)), "Amount is %s, should be 20000", contribution.Amount)
	suite.Assert().Equal(models.ContributionStatusSuccess, contribution.Status)
}

func (suite *TestSuiteStandard) TestRecordContributionRedelivery() {
	suite.createTestUser(models.User{Email: "adaeze@example.com"})

	event := models.PaymentEvent{
		TransactionReference: "PP-9f86d081884c",
		Amount:               decimal.NewFromInt(20000),
		PayerEmail:           "adaeze@example.com",
	}

	first, created, err := models.RecordContribution(models.DB, event)
	suite.Require().NoError(err)
	suite.Require().True(created)

	second, created, err := models.RecordContribution(models.DB, event)
	suite.Require().NoError(err)
	suite.Assert().False(created, "Re-delivery of the same event must not count as a new contribution")
	suite.Assert().Equal(first.ID, second.ID)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Contribution{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count, "Re-delivery of the same event must not create a second row")
}

func (suite *TestSuiteStandard) TestRecordContributionConcurrent() {
	suite.createTestUser(models.User{Email: "adaeze@example.com"})

	event := models.PaymentEvent{
		TransactionReference: "PP-9f86d081884c",
		Amount:               decimal.NewFromInt(20000),
		PayerEmail:           "adaeze@example.com",
	}

	type result struct {
		created bool
		err     error
	}

	var wg sync.WaitGroup
	results := make(chan result, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := models.RecordContribution(models.DB, event)
			results <- result{created, err}
		}()
	}

	wg.Wait()
	close(results)

	created := 0
	for r := range results {
		suite.Assert().NoError(r.err)
		if r.created {
			created++
		}
	}
	suite.Assert().Equal(1, created, "Exactly one of the concurrent deliveries must create the contribution")

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Contribution{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestContributionByReferenceAfterLostInsert() {
	user := suite.createTestUser(models.User{Email: "adaeze@example.com"})
	winner := suite.createTestContribution(models.Contribution{UserID: user.ID, TransactionReference: "PP-9f86d081884c"})

	// A delivery that loses the insert race fails on the unique index after
	// its BeforeCreate hook has already generated an ID
	loser := models.Contribution{
		UserID:               user.ID,
		Amount:               decimal.NewFromInt(20000),
		TransactionReference: "PP-9f86d081884c",
		Status:               models.ContributionStatusSuccess,
	}
	suite.Require().ErrorIs(models.DB.Create(&loser).Error, models.ErrContributionReferenceExists)
	suite.Require().NotEqual(uuid.Nil, loser.ID)

	// Looking the winner up must not be polluted by the dead ID
	found, err := models.ContributionByReference(models.DB, "PP-9f86d081884c")
	suite.Require().NoError(err)
	suite.Assert().Equal(winner.ID, found.ID)
}

func (suite *TestSuiteStandard) TestContributionByReferenceNotFound() {
	_, err := models.ContributionByReference(models.DB, "PP-unknown")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRecordContributionUnknownPayer() {
	_, _, err := models.RecordContribution(models.DB, models.PaymentEvent{
		TransactionReference: "PP-orphan",
		Amount:               decimal.NewFromInt(1000),
		PayerEmail:           "stranger@example.com",
	})
	suite.Assert().ErrorIs(err, models.ErrUnknownPayer)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Contribution{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "Events from unknown payers must not be recorded")
}

func (suite *TestSuiteStandard) TestContributionReferenceUnique() {
	user := suite.createTestUser(models.User{})
	suite.createTestContribution(models.Contribution{UserID: user.ID, TransactionReference: "PP-9f86d081884c"})

	err := models.DB.Create(&models.Contribution{
		UserID:               user.ID,
		Amount:               decimal.NewFromInt(100),
		TransactionReference: "PP-9f86d081884c",
		Status:               models.ContributionStatusSuccess,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrContributionReferenceExists)
}

func (suite *TestSuiteStandard) TestContributionAmountMustBePositive() {
	user := suite.createTestUser(models.User{})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		err := models.DB.Create(&models.Contribution{
			UserID:               user.ID,
			Amount:               amount,
			TransactionReference: "PP-" + amount.String(),
			Status:               models.ContributionStatusSuccess,
		}).Error
		suite.Assert().ErrorIs(err, models.ErrContributionAmountNotPositive)
	}

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Contribution{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}
