package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kolosave/backend/internal/models"
	"github.com/kolosave/backend/internal/paymentpoint"
	"github.com/rs/zerolog/log"
)

func RegisterWebhookRoutes(r *gin.RouterGroup) {
	r.POST("/paymentpoint", PaymentPointWebhook)
}

type WebhookResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message,omitempty" example:"Already processed"`
}

// @Summary		PaymentPoint webhook
// @Description	Records a payment notification from PaymentPoint on the contribution ledger. Deliveries are idempotent per transaction reference.
// @Tags			Webhooks
// @Produce		json
// @Success		200		{object}	WebhookResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			event	body		paymentpoint.Event	true	"Event"
// @Router			/v1/webhooks/paymentpoint [post]
func PaymentPointWebhook(c *gin.Context) {
	// The signature covers the raw bytes, so the body must be read before
	// any parsing.
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	secret := os.Getenv("PAYMENTPOINT_SECRET_KEY")
	err = paymentpoint.VerifySignature(secret, body, c.GetHeader(paymentpoint.SignatureHeader))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var event paymentpoint.Event
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: "the webhook payload is not valid JSON"})
		return
	}

	// Anything that is not a completed payment is acknowledged so that the
	// provider stops retrying, but never reaches the ledger.
	if !event.Successful() {
		c.JSON(http.StatusOK, WebhookResponse{Status: "success", Message: "Ignored non-payment event"})
		return
	}

	contribution, created, err := models.RecordContribution(models.DB, models.PaymentEvent{
		TransactionReference: event.TransactionID.String(),
		Amount:               event.AmountPaid,
		PayerEmail:           event.Customer.Email,
	})
	if err != nil {
		if errors.Is(err, models.ErrUnknownPayer) {
			// The event is lost for automatic processing and needs manual
			// reconciliation, so it must show up in the logs.
			log.Error().
				Str("request-id", requestid.Get(c)).
				Str("email", event.Customer.Email).
				Str("reference", event.TransactionID.String()).
				Msg("payment for unknown payer")
		}

		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if !created {
		log.Info().
			Str("request-id", requestid.Get(c)).
			Str("reference", contribution.TransactionReference).
			Msg("duplicate delivery, skipping")

		c.JSON(http.StatusOK, WebhookResponse{Status: "success", Message: "Already processed"})
		return
	}

	c.JSON(http.StatusOK, WebhookResponse{Status: "success"})
}
