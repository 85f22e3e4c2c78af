package http

import (
	"strings"

	"tastoria/internal/chat"
)

const actionNavigate = "navigate"

type respondReq struct {
	Message *string `json:"message"`
}

func (r respondReq) validate() error {
	if r.Message == nil || strings.TrimSpace(*r.Message) == "" {
		return chat.ErrEmptyInput
	}
	return nil
}

func (r respondReq) toInput() chat.RespondInput {
	return chat.RespondInput{Message: *r.Message}
}

// respondResp keeps the flat shape the web client reads: {message, action?, cafeId?}.
type respondResp struct {
	Message      string `json:"message"`
	Action       string `json:"action,omitempty"`
	CafeID       string `json:"cafeId,omitempty"`
	RequiresAuth bool   `json:"requiresAuth,omitempty"`
}

func (h *handler) newRespondResp(out chat.RespondOutput) respondResp {
	resp := respondResp{Message: out.Reply}
	if out.Navigate {
		resp.Action = actionNavigate
		resp.CafeID = out.CafeID
		resp.RequiresAuth = out.RequiresAuth
	}
	return resp
}

type errorResp struct {
	Message string `json:"message"`
}
