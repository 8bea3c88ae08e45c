package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/studysync/studysync-api/model"
	"github.com/studysync/studysync-api/services/inference"
	"gorm.io/gorm"
)

const (
	// mentorSystemPrompt frames every mentor conversation
	mentorSystemPrompt = "You are a helpful AI study mentor. Help students with study strategies, motivation, time management, and understanding concepts. Be encouraging and supportive."
	// summarizeSystemPrompt frames one-shot summarization calls
	summarizeSystemPrompt = "You are a text summarizer. Provide concise 3-line summaries."
	// historyWindow is the number of recent entries replayed for context
	historyWindow = 10
	// historyListCap bounds full-transcript reads
	historyListCap = 1000
)

// ErrProviderUnavailable is returned for any provider failure: timeout,
// error status, or quota. Callers map it to ServiceUnavailable.
var ErrProviderUnavailable = errors.New("ai provider unavailable")

// MentorService proxies mentor conversations to the inference provider and
// persists both sides of each exchange.
type MentorService struct {
	db  *gorm.DB
	llm *inference.Client
}

// NewMentorService creates a new mentor service
func NewMentorService(db *gorm.DB, llm *inference.Client) *MentorService {
	return &MentorService{
		db:  db,
		llm: llm,
	}
}

// Converse persists the user's message, replays the session's most recent
// entries as context, obtains a reply from the provider and persists it as
// an assistant entry. On provider failure the user message stays persisted
// (no rollback) and no retry is made.
func (s *MentorService) Converse(ctx context.Context, user *model.User, sessionID, message string) (string, error) {
	userChat := model.MentorChat{
		UserID:    user.ID,
		SessionID: sessionID,
		Role:      model.MentorRoleUser,
		Message:   message,
	}
	if err := s.db.Create(&userChat).Error; err != nil {
		return "", err
	}

	history, err := s.recentHistory(user.ID, sessionID)
	if err != nil {
		return "", err
	}

	messages := make([]inference.Message, 0, len(history)+1)
	messages = append(messages, inference.Message{Role: "system", Content: mentorSystemPrompt})
	for _, entry := range history {
		messages = append(messages, inference.Message{
			Role:    string(entry.Role),
			Content: entry.Message,
		})
	}

	start := time.Now()
	reply, err := s.llm.ChatCompletion(ctx, messages)
	if err != nil {
		return "", ErrProviderUnavailable
	}

	meta, _ := json.Marshal(map[string]interface{}{
		"model":      s.llm.Model(),
		"latency_ms": time.Since(start).Milliseconds(),
	})

	assistantChat := model.MentorChat{
		UserID:    user.ID,
		SessionID: sessionID,
		Role:      model.MentorRoleAssistant,
		Message:   reply,
		Metadata:  meta,
	}
	if err := s.db.Create(&assistantChat).Error; err != nil {
		return "", err
	}

	return reply, nil
}

// recentHistory loads the most recent entries for a session, returned in
// ascending timestamp order for contextual framing.
func (s *MentorService) recentHistory(userID, sessionID string) ([]model.MentorChat, error) {
	var recent []model.MentorChat
	err := s.db.Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("timestamp DESC").
		Limit(historyWindow).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}

	// Reverse into ascending order
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent, nil
}

// History returns the full transcript of a session in ascending order.
func (s *MentorService) History(userID, sessionID string) ([]model.MentorChat, error) {
	var entries []model.MentorChat
	err := s.db.Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("timestamp ASC").
		Limit(historyListCap).
		Find(&entries).Error
	return entries, err
}

// Summarize condenses arbitrary text into a short summary. Nothing is
// persisted; failures follow the same contract as Converse.
func (s *MentorService) Summarize(ctx context.Context, text string) (string, error) {
	messages := []inference.Message{
		{Role: "system", Content: summarizeSystemPrompt},
		{Role: "user", Content: "Summarize this in 3 lines:\n\n" + text},
	}

	summary, err := s.llm.ChatCompletion(ctx, messages)
	if err != nil {
		return "", ErrProviderUnavailable
	}
	return summary, nil
}
