package v1_test

import (
	"net/http"

	v1 "github.com/kolosave/backend/internal/controllers/v1"
	"github.com/kolosave/backend/internal/models"
	"github.com/kolosave/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users/register", map[string]string{
		"name":     "Adaeze Obi",
		"email":    "Adaeze@Example.com",
		"password": testPassword,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("adaeze@example.com", response.Data.Email)
	suite.Assert().False(response.Data.IsAdmin)

	// The password hash must never leave the backend
	suite.Assert().NotContains(recorder.Body.String(), "assword")
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	body := map[string]string{
		"name":     "Adaeze Obi",
		"email":    "adaeze@example.com",
		"password": testPassword,
	}

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users/register", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users/register", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestRegisterInvalidBody() {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"email": "adaeze@example.com", "password": testPassword}},
		{"invalid email", map[string]string{"name": "Adaeze Obi", "email": "not-an-email", "password": testPassword}},
		{"short password", map[string]string{"name": "Adaeze Obi", "email": "adaeze@example.com", "password": "short"}},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users/register", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	user, headers := suite.authenticatedUser(false)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(user.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users/login", map[string]string{
		"email":    user.Email,
		"password": "incorrect horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the email or password is incorrect", response.Error)
}

func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users/login", map[string]string{
		"email":    "nobody@example.com",
		"password": testPassword,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	// The response must not reveal whether the email is registered
	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the email or password is incorrect", response.Error)
}

func (suite *TestSuiteStandard) TestMeRequiresSession() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
