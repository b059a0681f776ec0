package paymentpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// DefaultBaseURL is the production PaymentPoint API.
const DefaultBaseURL = "https://api.paymentpoint.co"

// palmpayBankCode is the bank the virtual accounts are reserved with.
const palmpayBankCode = "20946"

// ErrProvisioningFailed is returned when PaymentPoint rejects or fails a
// virtual account reservation.
var ErrProvisioningFailed = errors.New("the payment provider could not reserve a virtual account")

// Client calls the PaymentPoint REST API.
type Client struct {
	BaseURL    string
	APIKey     string
	SecretKey  string
	BusinessID string
	HTTPClient *http.Client
}

// NewClient returns a client for the PaymentPoint API at baseURL.
func NewClient(baseURL, apiKey, secretKey, businessID string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		SecretKey:  secretKey,
		BusinessID: businessID,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientFromEnv configures a client from the PAYMENTPOINT_* environment
// variables.
func NewClientFromEnv() *Client {
	baseURL, ok := os.LookupEnv("PAYMENTPOINT_API_URL")
	if !ok {
		baseURL = DefaultBaseURL
	}

	return NewClient(
		baseURL,
		os.Getenv("PAYMENTPOINT_API_KEY"),
		os.Getenv("PAYMENTPOINT_SECRET_KEY"),
		os.Getenv("PAYMENTPOINT_BUSINESS_ID"),
	)
}

type createVirtualAccountRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	BankCode    []string `json:"bankCode"`
	BusinessID  string   `json:"businessId"`
}

type createVirtualAccountResponse struct {
	Status       string        `json:"status"`
	Message      string        `json:"message"`
	BankAccounts []BankAccount `json:"bankAccounts"`
}

// BankAccount is one reserved account as returned by PaymentPoint.
type BankAccount struct {
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName"`
	BankCode      string `json:"bankCode"`
}

// CreateVirtualAccount reserves a dedicated bank account for the user with
// PaymentPoint and returns the first reserved account.
func (c *Client) CreateVirtualAccount(ctx context.Context, name, email, phone string) (BankAccount, error) {
	if phone == "" {
		// The provider requires a phone number even though we do not
		// collect one at registration.
		phone = "00000000000"
	}

	payload, err := json.Marshal(createVirtualAccountRequest{
		Name:        name,
		Email:       email,
		PhoneNumber: phone,
		BankCode:    []string{palmpayBankCode},
		BusinessID:  c.BusinessID,
	})
	if err != nil {
		return BankAccount{}, err
	}

	url := fmt.Sprintf("%s/api/v1/createVirtualAccount", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return BankAccount{}, err
	}

	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return BankAccount{}, fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
	}
	defer res.Body.Close()

	var body createVirtualAccountResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return BankAccount{}, fmt.Errorf("%w: unparseable response", ErrProvisioningFailed)
	}

	if body.Status != "success" || len(body.BankAccounts) == 0 {
		if body.Message != "" {
			return BankAccount{}, fmt.Errorf("%w: %s", ErrProvisioningFailed, body.Message)
		}
		return BankAccount{}, ErrProvisioningFailed
	}

	return body.BankAccounts[0], nil
}
