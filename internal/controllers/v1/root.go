package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kolosave/backend/internal/httputil"
	"github.com/kolosave/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
}

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Accounts string `json:"accounts" example:"https://example.com/api/v1/accounts"` // Virtual account of the current user
	Goals    string `json:"goals" example:"https://example.com/api/v1/goals"`       // Savings cycle management
	Progress string `json:"progress" example:"https://example.com/api/v1/progress"` // Savings progress of the current user
	Targets  string `json:"targets" example:"https://example.com/api/v1/targets"`   // Monthly target management
	Users    string `json:"users" example:"https://example.com/api/v1/users"`       // Registration and login
	Webhooks string `json:"webhooks" example:"https://example.com/api/v1/webhooks"` // Payment provider callbacks
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Accounts: url + "/v1/accounts",
			Goals:    url + "/v1/goals",
			Progress: url + "/v1/progress",
			Targets:  url + "/v1/targets",
			Users:    url + "/v1/users",
			Webhooks: url + "/v1/webhooks",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
