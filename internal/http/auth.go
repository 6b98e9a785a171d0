package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cnlearn/cnlearn/internal/auth"
)

// AuthController serves registration, login and current-user endpoints.
type AuthController struct {
	service *auth.Service
}

func NewAuthController(service *auth.Service) *AuthController {
	return &AuthController{service: service}
}

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
}

// LoginRequest is the form-encoded login body, OAuth2 password-flow style:
// the username field carries the email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Register creates a new account.
// POST /users/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid registration payload")
		return
	}

	user, err := ac.service.Register(req.Email, req.Password, req.FullName)
	if err != nil {
		respondAppError(c, err, "register user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login exchanges credentials for an access token.
// POST /login/access-token
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "Incorrect email or password")
		return
	}

	token, err := ac.service.Login(req.Username, req.Password)
	if err != nil {
		respondAppError(c, err, "login")
		return
	}
	c.JSON(http.StatusOK, token)
}

// Me returns the authenticated user. Requires the auth middleware.
// GET /login/me
func (ac *AuthController) Me(c *gin.Context) {
	user := auth.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}
