package http

import (
	"lead-intake-agent/internal/chat"
	"lead-intake-agent/internal/session"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		Message: r.Message,
		UserID:  r.UserID,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response string `json:"response"`
	UserID   string `json:"user_id"`
	LeadID   string `json:"leadId,omitempty"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response: out.Response,
		UserID:   out.UserID,
		LeadID:   out.LeadID,
	}
}

type sessionsResp struct {
	ActiveSessions []string `json:"active_sessions"`
	Count          int      `json:"count"`
}

func (h *handler) newSessionsResp(out chat.SessionsOutput) sessionsResp {
	ids := out.ActiveSessions
	if ids == nil {
		ids = []string{}
	}
	return sessionsResp{ActiveSessions: ids, Count: out.Count}
}

type messageResp struct {
	Message string `json:"message"`
}

type historyResp struct {
	History []session.Turn `json:"history"`
	UserID  string         `json:"user_id"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := out.History
	if turns == nil {
		turns = []session.Turn{}
	}
	return historyResp{History: turns, UserID: out.UserID}
}

type leadResp struct {
	UserID  string            `json:"user_id"`
	Lead    map[string]string `json:"lead"`
	Missing []string          `json:"missing"`
	Ready   bool              `json:"ready"`
	LeadID  string            `json:"leadId,omitempty"`
}

func (h *handler) newLeadResp(out chat.LeadOutput) leadResp {
	return leadResp{
		UserID:  out.UserID,
		Lead:    out.Lead,
		Missing: out.Missing,
		Ready:   out.Ready,
		LeadID:  out.LeadID,
	}
}
