package web

import (
	"errors"
	"net/http"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/routing"
	"portfolio-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type contactData struct {
	Form       domain.FlowSnapshot
	Submitting bool
	Submitted  bool
	Profile    domain.Profile
}

func (h *Handler) contactPage(c *gin.Context) {
	flow := h.contact.Flows().Get(h.contactSession(c))
	h.renderContact(c, http.StatusOK, flow.Snapshot())
}

// submitContact blocks until the dispatch settles, then renders the form in
// its new state. A concurrent submit from the same visitor sees Submitting.
func (h *Handler) submitContact(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBind(&sub); err != nil {
		_ = c.Error(apperror.BadRequest("Malformed form submission"))
		return
	}

	flow := h.contact.Flows().Get(h.contactSession(c))
	res := flow.Submit(c.Request.Context(), sub)

	// A resubmit (double click) replaces the first response in the browser,
	// so it has to carry the first attempt's outcome.
	if errors.Is(res.Err, domain.ErrSubmissionInFlight) {
		snap := flow.Wait(c.Request.Context())
		h.renderContact(c, settledStatus(snap), snap)
		return
	}

	status := http.StatusOK
	switch res.Outcome {
	case domain.OutcomeInvalid:
		status = http.StatusUnprocessableEntity
	case domain.OutcomeFailed:
		status = http.StatusBadGateway
	case domain.OutcomeRejected:
		status = http.StatusConflict
	}

	h.renderContact(c, status, flow.Snapshot())
}

func settledStatus(snap domain.FlowSnapshot) int {
	switch {
	case snap.State == domain.FlowSubmitting:
		return http.StatusConflict
	case snap.Notice != "":
		return http.StatusBadGateway
	}
	return http.StatusOK
}

func (h *Handler) resetContact(c *gin.Context) {
	h.contact.Flows().Get(h.contactSession(c)).Reset()
	c.Redirect(http.StatusSeeOther, routing.PathFor(routing.ViewContact, ""))
}

func (h *Handler) renderContact(c *gin.Context, status int, snap domain.FlowSnapshot) {
	p := h.page(c, routing.ViewContact, "Contact", contactData{
		Form:       snap,
		Submitting: snap.State == domain.FlowSubmitting,
		Submitted:  snap.State == domain.FlowSubmitted,
		Profile:    h.content.Profile(c.Request.Context()),
	})
	if snap.State == domain.FlowSubmitting {
		p.Refresh = routing.PathFor(routing.ViewContact, "")
	}
	h.renderer.Render(c, status, string(routing.ViewContact), p)
}
