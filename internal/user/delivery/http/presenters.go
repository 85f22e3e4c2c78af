package http

import (
	"strings"
	"time"

	"tastoria/internal/user"
)

// --- Request DTOs ---

type sendOTPReq struct {
	Name     string `json:"name"     binding:"required,max=100"`
	Email    string `json:"email"    binding:"required,loose_email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

func (r sendOTPReq) toInput() user.SendVerificationOTPInput {
	return user.SendVerificationOTPInput{
		Name:     strings.TrimSpace(r.Name),
		Email:    normalizeEmail(r.Email),
		Password: r.Password,
	}
}

type verifyOTPReq struct {
	TempUserID string `json:"tempUserId" binding:"required"`
	OTP        string `json:"otp"        binding:"required,len=6,numeric"`
}

func (r verifyOTPReq) toInput() user.VerifySignupOTPInput {
	return user.VerifySignupOTPInput{TempUserID: r.TempUserID, OTP: r.OTP}
}

type registerReq struct {
	Name     string `json:"name"     binding:"required,max=100"`
	Email    string `json:"email"    binding:"required,loose_email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:     strings.TrimSpace(r.Name),
		Email:    normalizeEmail(r.Email),
		Password: r.Password,
	}
}

type verifyEmailReq struct {
	Code string `json:"code" binding:"required,hexadecimal"`
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,loose_email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: normalizeEmail(r.Email), Password: r.Password}
}

type googleReq struct {
	Name     string `json:"name"     binding:"max=100"`
	Email    string `json:"email"    binding:"required,loose_email"`
	GoogleID string `json:"googleId" binding:"required"`
	PhotoURL string `json:"photoURL" binding:"omitempty,url"`
}

func (r googleReq) toInput() user.GoogleInput {
	return user.GoogleInput{
		Name:     strings.TrimSpace(r.Name),
		Email:    normalizeEmail(r.Email),
		GoogleID: r.GoogleID,
		PhotoURL: r.PhotoURL,
	}
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// --- Response DTOs ---

type userResp struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"isVerified"`
	IsAdmin    bool      `json:"isAdmin"`
	PhotoURL   string    `json:"photoURL,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		IsAdmin:    u.IsAdmin,
		PhotoURL:   u.PhotoURL,
		CreatedAt:  u.CreatedAt,
	}
}

type sendOTPResp struct {
	Message    string `json:"message"`
	TempUserID string `json:"tempUserId"`
}

type messageUserResp struct {
	Message string   `json:"message"`
	User    userResp `json:"user"`
}

type authResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func newAuthResp(out user.AuthOutput) authResp {
	return authResp{Token: out.Token, User: newUserResp(out.User)}
}
