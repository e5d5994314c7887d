package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/stit/internal/app/models/dto"
	"github.com/yigit/stit/internal/app/services"
	"github.com/yigit/stit/internal/middleware"
)

const (
	msgRegistered = "Registration successful! Please login."
	msgLoggedOut  = "You have been logged out."
)

// AuthController handles signup, login and logout
type AuthController struct {
	authService services.AuthService
	pages       Pages
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, pages Pages, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		pages:       pages,
		logger:      logger,
	}
}

// Index shows the landing page, or the dashboard when a session exists
func (ac *AuthController) Index(c *gin.Context) {
	if middleware.SessionUserID(c) != 0 {
		middleware.Redirect(c, "/dashboard")
		return
	}
	ac.pages.Render(c, http.StatusOK, "index.html", nil, gin.H{"Title": "Welcome"})
}

// SignupPage shows the registration form
func (ac *AuthController) SignupPage(c *gin.Context) {
	ac.pages.Render(c, http.StatusOK, "signup.html", nil, gin.H{"Title": "Sign up"})
}

// Signup creates an account and sends the user to the login page
func (ac *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := middleware.BindForm(c, &req); err != nil {
		ac.logger.Warn().Err(err).Msg("Invalid signup form")
		middleware.HandleWebError(c, err)
		return
	}

	if _, err := ac.authService.SignUp(c.Request.Context(), req); err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	middleware.AddFlash(c, middleware.FlashSuccess, msgRegistered)
	middleware.Redirect(c, "/login")
}

// LoginPage shows the login form
func (ac *AuthController) LoginPage(c *gin.Context) {
	ac.pages.Render(c, http.StatusOK, "login.html", nil, gin.H{"Title": "Log in"})
}

// Login checks the credentials and starts a session
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := middleware.BindForm(c, &req); err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	user, err := ac.authService.LogIn(c.Request.Context(), req)
	if err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	if err := middleware.StartSession(c, user); err != nil {
		middleware.HandleWebError(c, err)
		return
	}

	ac.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	middleware.Redirect(c, "/dashboard")
}

// Logout clears the session whether or not one exists
func (ac *AuthController) Logout(c *gin.Context) {
	middleware.ClearWithFlash(c, middleware.FlashSuccess, msgLoggedOut)
	middleware.Redirect(c, "/")
}
