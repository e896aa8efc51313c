package v1

import (
	"errors"
	"net/http"

	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/internal/domain"
	"portfolio-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// limit guards the submit endpoint and may be nil.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	handlers := []gin.HandlerFunc{handler.SubmitContact}
	if limit != nil {
		handlers = append([]gin.HandlerFunc{limit}, handlers...)
	}
	public.POST("/contact", handlers...)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a message and forward it to the email dispatch service.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response  "field -> message in error"
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON body"))
		return
	}

	res := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	switch res.Outcome {
	case domain.OutcomeSent:
		response.Success(c, http.StatusOK, "Message Sent!", nil)
	case domain.OutcomeInvalid:
		c.Error(apperror.Unprocessable("Validation failed", res.FieldErrors))
	case domain.OutcomeRejected:
		c.Error(apperror.Conflict("A submission is already in progress", res.Err))
	default:
		if errors.Is(res.Err, domain.ErrDispatchNotConfigured) {
			c.Error(apperror.ServiceUnavailable("Contact service temporarily unavailable", res.Err))
			return
		}
		c.Error(apperror.BadGateway(domain.ContactFailureNotice, res.Err))
	}
}
