package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kolosave/backend/internal/httputil"
	"github.com/kolosave/backend/internal/models"
	"github.com/kolosave/backend/internal/paymentpoint"
)

func RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", RequireSession, GetAccount)
	r.POST("", RequireSession, ProvisionAccount)
}

type VirtualAccountResponse struct {
	Data models.VirtualAccount `json:"data"` // The virtual account
}

// @Summary		Get virtual account
// @Description	Returns the funding account of the session user
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	VirtualAccountResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/accounts [get]
func GetAccount(c *gin.Context) {
	user := currentUser(c)

	account, ok, err := models.VirtualAccountForUser(models.DB, user.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, httpError{Error: "no virtual account has been provisioned yet"})
		return
	}

	c.JSON(http.StatusOK, VirtualAccountResponse{Data: account})
}

// @Summary		Provision virtual account
// @Description	Reserves a dedicated funding account for the session user with PaymentPoint. Users that already have an account get it back unchanged.
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	VirtualAccountResponse
// @Success		201	{object}	VirtualAccountResponse
// @Failure		401	{object}	httpError
// @Failure		502	{object}	httpError
// @Router			/v1/accounts [post]
func ProvisionAccount(c *gin.Context) {
	user := currentUser(c)

	// Provisioning is idempotent per user: the account is immutable once
	// reserved with the provider.
	account, ok, err := models.VirtualAccountForUser(models.DB, user.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}
	if ok {
		c.JSON(http.StatusOK, VirtualAccountResponse{Data: account})
		return
	}

	client := paymentpoint.NewClientFromEnv()
	reserved, err := client.CreateVirtualAccount(c.Request.Context(), user.Name, user.Email, "")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	account = models.VirtualAccount{
		UserID:        user.ID,
		AccountNumber: reserved.AccountNumber,
		AccountName:   reserved.AccountName,
		BankName:      reserved.BankName,
		BankCode:      reserved.BankCode,
		// The provider does not return a dedicated reservation reference,
		// so the account number doubles as one.
		ReservationReference: reserved.AccountNumber,
	}

	if err := models.SaveVirtualAccount(models.DB, &account); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, VirtualAccountResponse{Data: account})
}
