package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kolosave/backend/internal/httputil"
	"github.com/kolosave/backend/internal/models"
)

func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login)

	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", RequireSession, Me)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Adaeze Obi"`
	Email    string `json:"email" binding:"required,email" example:"adaeze@example.com"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"adaeze@example.com"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	Data models.User `json:"data"` // The user
}

type SessionResponse struct {
	Token string      `json:"token"` // Bearer token for the session
	Data  models.User `json:"data"`  // The logged-in user
}

// @Summary		Register user
// @Description	Registers a new member of the savings group
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/users/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user := models.User{
		Name:  request.Name,
		Email: request.Email,
	}

	if err := user.SetPassword(request.Password); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	if err := models.DB.Create(&user).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: user})
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a session token
// @Tags			Users
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/users/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user, err := models.UserByEmail(models.DB, request.Email)
	if err != nil || !user.CheckPassword(request.Password) {
		// The response does not tell whether the email or the password
		// was wrong.
		c.JSON(http.StatusUnauthorized, httpError{Error: "the email or password is incorrect"})
		return
	}

	token, err := issueSessionToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Token: token, Data: user})
}

// @Summary		Current user
// @Description	Returns the user the session belongs to
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Router			/v1/users/me [get]
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, UserResponse{Data: currentUser(c)})
}
