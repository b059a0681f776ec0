package v1

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kolosave/backend/internal/httputil"
	"github.com/kolosave/backend/internal/models"
)

// contextUser is the gin context key the session middleware stores the
// authenticated user under.
const contextUser = "kolo-current-user"

const sessionLifetime = 24 * time.Hour

// issueSessionToken returns a signed session token for the user.
func issueSessionToken(user models.User) (string, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return "", httputil.ErrNoSession
	}

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionLifetime)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// sessionUser resolves the user a bearer token belongs to.
func sessionUser(c *gin.Context) (models.User, error) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return models.User{}, httputil.ErrNoSession
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return models.User{}, httputil.ErrNoSession
	}

	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.User{}, httputil.ErrNoSession
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.User{}, httputil.ErrNoSession
	}

	var user models.User
	err = models.DB.First(&user, "id = ?", id).Error
	if err != nil {
		return models.User{}, httputil.ErrNoSession
	}

	return user, nil
}

// RequireSession authenticates the request and stores the current user in
// the context. Requests without a valid session are rejected.
func RequireSession(c *gin.Context) {
	user, err := sessionUser(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: err.Error()})
		return
	}

	c.Set(contextUser, user)
	c.Next()
}

// RequireAdmin rejects requests from users without the admin flag. It must
// run after RequireSession.
func RequireAdmin(c *gin.Context) {
	if !currentUser(c).IsAdmin {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: httputil.ErrNotAdmin.Error()})
		return
	}

	c.Next()
}

// currentUser returns the user stored by RequireSession.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}
