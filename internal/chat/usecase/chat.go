package usecase

import (
	"context"
	"fmt"
	"strings"

	"lead-intake-agent/internal/chat"
	"lead-intake-agent/internal/extractor"
	"lead-intake-agent/internal/lead"
)

// Chat runs one turn: record the message, extract fields, then either submit
// the completed lead or ask for the next missing field.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	userID := input.UserID
	if userID == "" {
		userID = uc.newID()
	}

	if strings.TrimSpace(input.Message) == "" {
		uc.metrics.ObserveTurn(OutcomeEmpty)
		return chat.ChatOutput{Response: MsgEmptyMessage, UserID: userID}, nil
	}

	sess := uc.sessions.Resolve(userID)
	uc.metrics.SetActiveSessions(uc.sessions.Len())

	sess.Lock()
	defer sess.Unlock()

	sess.Memory.AppendUser(input.Message)

	frag, err := uc.extractor.Extract(ctx, input.Message)
	if err != nil {
		uc.l.Warnf(ctx, "%s: extraction failed for %s: %v", LogPrefixChat, userID, err)
		reply := fmt.Sprintf(MsgExtractionErrorTmpl, err)
		sess.Memory.AppendAssistant(reply)
		uc.metrics.ObserveTurn(OutcomeExtractionError)
		return chat.ChatOutput{Response: reply, UserID: userID}, nil
	}

	if added := sess.Collector.Update(frag); len(added) > 0 {
		uc.l.Debugf(ctx, "%s: %s collected %s", LogPrefixChat, userID, lead.JoinFields(added))
	}

	if sess.Collector.Ready() {
		leadID, ok := sess.Collector.Submit(ctx)
		uc.metrics.ObserveSubmission(ok)
		if ok {
			uc.metrics.ObserveTurn(OutcomeSubmitted)
		} else {
			uc.metrics.ObserveTurn(OutcomeSubmitFailed)
		}
		sess.Memory.AppendAssistant(MsgLeadCreated)
		return chat.ChatOutput{Response: MsgLeadCreated, UserID: userID, LeadID: leadID}, nil
	}

	snap := sess.Collector.Snapshot()
	reply, err := uc.extractor.Ask(ctx, extractor.AskInput{
		Message: input.Message,
		Missing: snap.Missing,
		Known:   snap.Values,
		History: sess.Memory.Recent(uc.historyWindow),
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: follow-up generation failed for %s: %v", LogPrefixChat, userID, err)
		reply = fallbackQuestion(snap.Missing)
		uc.metrics.ObserveTurn(OutcomeFollowUpFallback)
	} else {
		uc.metrics.ObserveTurn(OutcomeFollowUp)
	}

	sess.Memory.AppendAssistant(reply)
	return chat.ChatOutput{Response: reply, UserID: userID}, nil
}
