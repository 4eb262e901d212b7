package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/cliqtrix/consulting-chatbot/internal/audit"
	"github.com/cliqtrix/consulting-chatbot/internal/auth"
	"github.com/cliqtrix/consulting-chatbot/internal/httperr"
	"github.com/cliqtrix/consulting-chatbot/internal/httpresp"
	"github.com/cliqtrix/consulting-chatbot/internal/otp"
	"github.com/cliqtrix/consulting-chatbot/internal/sms"
)

type OTPHandler struct {
	store  otp.Store
	sender sms.Sender
	tokens *auth.TokenService
	audit  *audit.Dispatcher
}

func NewOTPHandler(
	store otp.Store,
	sender sms.Sender,
	tokens *auth.TokenService,
	auditDispatcher *audit.Dispatcher,
) *OTPHandler {
	return &OTPHandler{
		store:  store,
		sender: sender,
		tokens: tokens,
		audit:  auditDispatcher,
	}
}

type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

func (h *OTPHandler) Send(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	code, err := h.store.Issue(c.Request.Context(), req.Phone)
	if err != nil {
		httperr.Internal(c, "Error sending OTP")
		return
	}

	// Delivery is best-effort; the default sender just logs the code.
	body := fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code)
	_ = h.sender.Send(c.Request.Context(), req.Phone, body)

	h.audit.Dispatch(audit.Event{
		Actor:  req.Phone,
		Action: "otp_issued",
		Entity: "otp",
	})

	httpresp.Success(c, "📱 OTP sent to your phone!")
}

// Verify consumes the code on success and returns a short-lived
// verified-phone token. Business failures come back as 200 with
// success:false, so callers check the flag, not the status.
func (h *OTPHandler) Verify(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	err := h.store.Verify(c.Request.Context(), req.Phone, req.OTP)
	switch {
	case errors.Is(err, otp.ErrNotFound):
		httperr.Reject(c, "OTP not found")
		return
	case errors.Is(err, otp.ErrExpired):
		httperr.Reject(c, "OTP expired. Please request a new one.")
		return
	case errors.Is(err, otp.ErrMismatch):
		httperr.Reject(c, "Invalid OTP. Please try again.")
		return
	case err != nil:
		httperr.Internal(c, "Error verifying OTP")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:  req.Phone,
		Action: "otp_verified",
		Entity: "otp",
	})

	token, err := h.tokens.SignPhoneToken(req.Phone)
	if err != nil {
		// Verification itself succeeded; report that even if the token
		// could not be signed.
		httpresp.Success(c, "✅ Phone verified successfully!")
		return
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"message": "✅ Phone verified successfully!",
		"token":   token,
	})
}
