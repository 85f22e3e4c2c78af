package http

import (
	"github.com/gin-gonic/gin"

	"tastoria/pkg/response"
)

// SendVerificationOTP godoc
// @Summary     Start OTP signup
// @Description Emails a 6 digit code and returns the id of the pending signup. The code expires after 10 minutes.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body sendOTPReq true "Signup details"
// @Success     200 {object} response.Resp{data=sendOTPResp}
// @Failure     400 {object} response.Resp "Bad Request or user exists"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Mail could not be sent"
// @Router      /api/users/send-verification-otp [POST]
func (h *handler) SendVerificationOTP(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bind[sendOTPReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SendVerificationOTP(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.SendVerificationOTP: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sendOTPResp{Message: "OTP sent successfully", TempUserID: out.TempUserID})
}

// VerifySignupOTP godoc
// @Summary     Finish OTP signup
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body verifyOTPReq true "Pending signup id and code"
// @Success     201 {object} response.Resp{data=messageUserResp}
// @Failure     400 {object} response.Resp "Invalid or expired session, invalid or expired OTP"
// @Router      /api/users/verify-signup-otp [POST]
func (h *handler) VerifySignupOTP(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bind[verifyOTPReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.VerifySignupOTP(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.VerifySignupOTP: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, messageUserResp{Message: "User registered successfully", User: newUserResp(u)})
}

// Register godoc
// @Summary     Register with an emailed verification code
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Signup details"
// @Success     201 {object} response.Resp{data=messageUserResp}
// @Failure     400 {object} response.Resp "Bad Request or user exists"
// @Router      /api/users/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bind[registerReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, messageUserResp{
		Message: "Registration successful. Please check your email to verify your account.",
		User:    newUserResp(u),
	})
}

// VerifyEmail godoc
// @Summary     Verify email with code
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body verifyEmailReq true "Verification code"
// @Success     200 {object} response.Resp{data=messageUserResp}
// @Failure     400 {object} response.Resp "Invalid or expired verification code"
// @Router      /api/users/verify-email [POST]
func (h *handler) VerifyEmail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bind[verifyEmailReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.VerifyEmail(ctx, req.Code)
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.VerifyEmail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, messageUserResp{Message: "Email verified successfully", User: newUserResp(u)})
}

// Login godoc
// @Summary     Login with email and password
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} response.Resp{data=authResp}
// @Failure     400 {object} response.Resp "Invalid credentials"
// @Failure     401 {object} response.Resp "Email not verified"
// @Router      /api/users/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bind[loginReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAuthResp(out))
}

// GoogleSignup godoc
// @Summary     Register a Google account
// @Description Responds 201 for a new account and 200 when the email is already registered.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body googleReq true "Profile from the identity provider"
// @Success     200 {object} response.Resp{data=messageUserResp}
// @Success     201 {object} response.Resp{data=messageUserResp}
// @Router      /api/users/google-signup [POST]
func (h *handler) GoogleSignup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bind[googleReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.GoogleSignup(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.GoogleSignup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if !out.Created {
		response.OK(c, messageUserResp{Message: "User already exists", User: newUserResp(out.User)})
		return
	}
	response.Created(c, messageUserResp{Message: "User created successfully", User: newUserResp(out.User)})
}

// GoogleAuth godoc
// @Summary     Sign in with Google
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body googleReq true "Profile from the identity provider"
// @Success     200 {object} response.Resp{data=authResp}
// @Router      /api/users/google-auth [POST]
func (h *handler) GoogleAuth(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bind[googleReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.GoogleAuth(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.GoogleAuth: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAuthResp(out))
}
