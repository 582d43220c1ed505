package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"monastery/internal/models/request_models"
	"monastery/internal/services"
	"monastery/pkg/middleware"
	"monastery/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new account. The first account on a fresh site becomes admin.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse{data=response_models.AccountResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/auth/signup [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Username must be 3-50 characters and password at least 6")
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, account, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a bearer token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse{data=response_models.AccountLoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Description Revoke the bearer token used for this request
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	expiresAt, _ := c.Get(middleware.ContextExpiresAt)
	exp, _ := expiresAt.(time.Time)

	a.accountService.Logout(c.GetString(middleware.ContextTokenID), c.GetString(middleware.ContextUsername), exp)
	utils.RespondSuccess(c, nil, "Logged out")
}

// GetAllAccounts godoc
// @Summary Get all accounts
// @Description Fetch a list of all accounts (admin only)
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.AccountResponse}
// @Security BearerAuth
// @Router /api/accounts [get]
func (a *AccountController) GetAllAccounts(c *gin.Context) {

	accounts, err := a.accountService.GetAllAccounts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Accounts fetched successfully")
}
