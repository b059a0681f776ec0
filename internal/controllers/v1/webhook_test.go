package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"

	v1 "github.com/kolosave/backend/internal/controllers/v1"
	"github.com/kolosave/backend/internal/models"
	"github.com/kolosave/backend/internal/paymentpoint"
	"github.com/kolosave/backend/test"
	"github.com/shopspring/decimal"
)

// paymentEventBody builds a PaymentPoint notification payload.
func paymentEventBody(reference string, amount int64, email string) string {
	return fmt.Sprintf(
		`{"transaction_id": %q, "amount_paid": %d, "notification_status": "payment_successful", "transaction_status": "success", "customer": {"name": "Test Saver", "email": %q}}`,
		reference, amount, email)
}

// signedWebhookRequest delivers a webhook payload with a valid signature.
func (suite *TestSuiteStandard) signedWebhookRequest(body string) httptest.ResponseRecorder {
	return test.Request(suite.T(), http.MethodPost, "http://example.com/v1/webhooks/paymentpoint", body, map[string]string{
		paymentpoint.SignatureHeader: paymentpoint.Sign(os.Getenv("PAYMENTPOINT_SECRET_KEY"), []byte(body)),
	})
}

func (suite *TestSuiteStandard) contributionCount() int64 {
	var count int64
	suite.Require().NoError(models.DB.Model(&models.Contribution{}).Count(&count).Error)
	return count
}

func (suite *TestSuiteStandard) TestWebhookRecordsContribution() {
	user := suite.createTestUser(models.User{})

	recorder := suite.signedWebhookRequest(paymentEventBody("PP-9f86d081884c", 20000, user.Email))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WebhookResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("success", response.Status)

	var contribution models.Contribution
	suite.Require().NoError(models.DB.First(&contribution).Error)
	suite.Assert().Equal(user.ID, contribution.UserID)
	suite.Assert().Equal("PP-9f86d081884c", contribution.TransactionReference)
	suite.Assert().True(contribution.Amount.Equal(decimal.NewFromInt(20000)))
}

func (suite *TestSuiteStandard) TestWebhookRedelivery() {
	user := suite.createTestUser(models.User{})
	body := paymentEventBody("PP-9f86d081884c", 20000, user.Email)

	recorder := suite.signedWebhookRequest(body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// The provider retries until it sees a success response, so the second
	// delivery is acknowledged but must not be recorded again
	recorder = suite.signedWebhookRequest(body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WebhookResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Already processed", response.Message)

	suite.Assert().Equal(int64(1), suite.contributionCount())
}

func (suite *TestSuiteStandard) TestWebhookTamperedBody() {
	user := suite.createTestUser(models.User{})

	signature := paymentpoint.Sign(os.Getenv("PAYMENTPOINT_SECRET_KEY"), []byte(paymentEventBody("PP-1", 500, user.Email)))
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/webhooks/paymentpoint",
		paymentEventBody("PP-1", 500000, user.Email),
		map[string]string{paymentpoint.SignatureHeader: signature})

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	suite.Assert().Equal(int64(0), suite.contributionCount())
}

func (suite *TestSuiteStandard) TestWebhookMissingSignature() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/webhooks/paymentpoint", paymentEventBody("PP-1", 500, user.Email))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(int64(0), suite.contributionCount())
}

func (suite *TestSuiteStandard) TestWebhookNoSecretConfigured() {
	suite.T().Setenv("PAYMENTPOINT_SECRET_KEY", "")

	recorder := suite.signedWebhookRequest(paymentEventBody("PP-1", 500, "adaeze@example.com"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestWebhookUnknownPayer() {
	recorder := suite.signedWebhookRequest(paymentEventBody("PP-1", 500, "stranger@example.com"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().Equal(int64(0), suite.contributionCount())
}

func (suite *TestSuiteStandard) TestWebhookIgnoresNonPayment() {
	user := suite.createTestUser(models.User{})
	body := fmt.Sprintf(
		`{"transaction_id": "PP-1", "amount_paid": 500, "notification_status": "payment_reversed", "transaction_status": "reversed", "customer": {"email": %q}}`,
		user.Email)

	recorder := suite.signedWebhookRequest(body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WebhookResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Ignored non-payment event", response.Message)

	suite.Assert().Equal(int64(0), suite.contributionCount())
}

func (suite *TestSuiteStandard) TestWebhookNumericTransactionID() {
	user := suite.createTestUser(models.User{})
	body := fmt.Sprintf(
		`{"transaction_id": 90071992547409, "amount_paid": 500, "transaction_status": "success", "customer": {"email": %q}}`,
		user.Email)

	recorder := suite.signedWebhookRequest(body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var contribution models.Contribution
	suite.Require().NoError(models.DB.First(&contribution).Error)
	suite.Assert().Equal("90071992547409", contribution.TransactionReference)
}

func (suite *TestSuiteStandard) TestWebhookInvalidJSON() {
	recorder := suite.signedWebhookRequest(`{ invalid_json`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
