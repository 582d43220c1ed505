package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"monastery/internal/models/request_models"
	"monastery/internal/services"
	"monastery/pkg/utils"
)

type ContactController struct {
	contactService services.ContactServiceInterface
}

func NewContactController(contactService services.ContactServiceInterface) *ContactController {
	return &ContactController{contactService: contactService}
}

// SubmitContact godoc
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body request_models.ContactRequest true "Contact payload"
// @Success 201 {object} utils.APIResponse{data=response_models.ContactMessage}
// @Failure 400 {object} utils.APIResponse
// @Router /api/contact [post]
func (ct *ContactController) SubmitContact(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, a valid email and a message are required")
		return
	}

	message, err := ct.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, message, "Thank you for your message")
}

// ListContacts godoc
// @Summary List contact messages
// @Description Admin only, newest first
// @Tags Contact
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=services.ContactPage}
// @Security BearerAuth
// @Router /api/contact [get]
func (ct *ContactController) ListContacts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return
	}

	messages, err := ct.contactService.ListMessages(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}
