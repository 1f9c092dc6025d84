package usecase

import (
	"context"
	"errors"
	"fmt"

	"lead-intake-agent/internal/chat"
	"lead-intake-agent/internal/session"
)

func (uc *implUseCase) ListSessions(ctx context.Context) (chat.SessionsOutput, error) {
	ids := uc.sessions.List()
	return chat.SessionsOutput{ActiveSessions: ids, Count: len(ids)}, nil
}

func (uc *implUseCase) ClearSession(ctx context.Context, userID string) (chat.ClearOutput, error) {
	existed := uc.sessions.Clear(userID)
	uc.metrics.SetActiveSessions(uc.sessions.Len())
	if existed {
		uc.l.Infof(ctx, "%s: cleared session %s", LogPrefixClear, userID)
	}
	return chat.ClearOutput{
		Message: fmt.Sprintf(MsgSessionClearedTmpl, userID),
		Existed: existed,
	}, nil
}

func (uc *implUseCase) History(ctx context.Context, userID string) (chat.HistoryOutput, error) {
	sess, err := uc.lookup(userID)
	if err != nil {
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{History: sess.Memory.Snapshot(), UserID: userID}, nil
}

func (uc *implUseCase) Lead(ctx context.Context, userID string) (chat.LeadOutput, error) {
	sess, err := uc.lookup(userID)
	if err != nil {
		return chat.LeadOutput{}, err
	}

	snap := sess.Collector.Snapshot()
	values := make(map[string]string, len(snap.Values))
	for f, v := range snap.Values {
		values[string(f)] = v
	}
	return chat.LeadOutput{
		UserID:  userID,
		Lead:    values,
		Missing: fieldNames(snap.Missing),
		Ready:   snap.Ready,
		LeadID:  snap.LeadID,
	}, nil
}

func (uc *implUseCase) lookup(userID string) (*session.Session, error) {
	sess, err := uc.sessions.Get(userID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil, fmt.Errorf("%w: %s", chat.ErrSessionNotFound, userID)
	}
	return sess, err
}
