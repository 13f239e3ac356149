// Package chat 提供聊天服务单元测试
package chat

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/wellmind/campus-care/internal/model"
	"github.com/wellmind/campus-care/internal/repository"
	"github.com/wellmind/campus-care/internal/service/responder"
)

// mockChatRepository Mock Chat Repository
type mockChatRepository struct {
	sessions  map[string]*model.ChatSession
	messages  map[string][]*model.ChatMessage
	analytics map[string]*model.ChatAnalytics

	createSessionError error
	createMsgError     error
}

func newMockChatRepo() *mockChatRepository {
	return &mockChatRepository{
		sessions:  make(map[string]*model.ChatSession),
		messages:  make(map[string][]*model.ChatMessage),
		analytics: make(map[string]*model.ChatAnalytics),
	}
}

func (m *mockChatRepository) CreateSession(session *model.ChatSession) error {
	if m.createSessionError != nil {
		return m.createSessionError
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockChatRepository) GetSessionByID(id string) (*model.ChatSession, error) {
	if session, ok := m.sessions[id]; ok {
		return session, nil
	}
	return nil, errors.New("session not found")
}

func (m *mockChatRepository) ListSessionsByUser(userID string, limit int) ([]*model.ChatSession, error) {
	result := make([]*model.ChatSession, 0)
	for _, session := range m.sessions {
		if session.UserID == userID {
			result = append(result, session)
		}
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (m *mockChatRepository) UpdateSession(session *model.ChatSession) error {
	if _, ok := m.sessions[session.ID]; !ok {
		return errors.New("session not found")
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockChatRepository) CreateMessage(message *model.ChatMessage) error {
	if m.createMsgError != nil {
		return m.createMsgError
	}
	m.messages[message.SessionID] = append(m.messages[message.SessionID], message)
	return nil
}

func (m *mockChatRepository) ListMessagesBySession(sessionID string) ([]*model.ChatMessage, error) {
	return m.messages[sessionID], nil
}

func (m *mockChatRepository) CreateAnalytics(analytics *model.ChatAnalytics) error {
	m.analytics[analytics.SessionID] = analytics
	return nil
}

func (m *mockChatRepository) GetAnalyticsBySession(sessionID string) (*model.ChatAnalytics, error) {
	if analytics, ok := m.analytics[sessionID]; ok {
		return analytics, nil
	}
	return nil, errors.New("analytics not found")
}

func (m *mockChatRepository) SaveAnalytics(analytics *model.ChatAnalytics) error {
	m.analytics[analytics.SessionID] = analytics
	return nil
}

var _ repository.ChatRepository = (*mockChatRepository)(nil)

// mockEmotionRepository Mock Emotion Repository
type mockEmotionRepository struct {
	events []*model.EmotionEvent
}

func (m *mockEmotionRepository) CreateEvent(event *model.EmotionEvent) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEmotionRepository) ListEventsByUser(userID string, limit int) ([]*model.EmotionEvent, error) {
	result := make([]*model.EmotionEvent, 0)
	for _, event := range m.events {
		if event.UserID == userID {
			result = append(result, event)
		}
	}
	return result, nil
}

var _ repository.EmotionRepository = (*mockEmotionRepository)(nil)

// mockTemplateRepository Mock Template Repository（选择器依赖）
type mockTemplateRepository struct {
	templates []*model.ResponseTemplate
	findErr   error
}

func (m *mockTemplateRepository) Create(template *model.ResponseTemplate) error {
	m.templates = append(m.templates, template)
	return nil
}

func (m *mockTemplateRepository) FindActiveByEmotion(emotion string, limit int) ([]*model.ResponseTemplate, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	result := make([]*model.ResponseTemplate, 0)
	for _, template := range m.templates {
		if template.Emotion == emotion && template.IsActive {
			result = append(result, template)
		}
	}
	return result, nil
}

func (m *mockTemplateRepository) List() ([]*model.ResponseTemplate, error) {
	return m.templates, nil
}

func (m *mockTemplateRepository) Count() (int64, error) {
	return int64(len(m.templates)), nil
}

var _ repository.TemplateRepository = (*mockTemplateRepository)(nil)

// newTestService 组装聊天服务及其 mock 依赖
func newTestService(t *testing.T) (*Service, *mockChatRepository, *mockEmotionRepository) {
	svc, chatRepo, emotionRepo, _ := newTestServiceWithTemplates(t)
	return svc, chatRepo, emotionRepo
}

func newTestServiceWithTemplates(t *testing.T) (*Service, *mockChatRepository, *mockEmotionRepository, *mockTemplateRepository) {
	t.Helper()

	chatRepo := newMockChatRepo()
	emotionRepo := &mockEmotionRepository{}
	templateRepo := &mockTemplateRepository{}
	repos := &repository.Repositories{
		Chat:     chatRepo,
		Emotion:  emotionRepo,
		Template: templateRepo,
	}

	corpus := responder.NewCorpus(filepath.Join(t.TempDir(), "missing.csv"))
	selector := responder.NewSelector(repos.Template, corpus, 3)

	return NewService(repos, selector, 0), chatRepo, emotionRepo, templateRepo
}

// ========== 测试用例 ==========

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	svc, chatRepo, _ := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Feeling overwhelmed"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	if session.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", session.UserID)
	}
	if session.Status != model.SessionStatusActive {
		t.Errorf("Status = %s, want %s", session.Status, model.SessionStatusActive)
	}
	if session.LastActivityAt.IsZero() {
		t.Error("LastActivityAt not initialized")
	}

	// 创建会话同时初始化统计记录
	analytics, err := chatRepo.GetAnalyticsBySession(session.ID)
	if err != nil {
		t.Fatalf("analytics not created: %v", err)
	}
	if analytics.MessageCount != 0 {
		t.Errorf("MessageCount = %d, want 0", analytics.MessageCount)
	}
	if analytics.UserID != "user-1" {
		t.Errorf("analytics UserID = %s, want user-1", analytics.UserID)
	}
}

func TestGetSessionOwnership(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Private session"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		userID    string
		sessionID string
		wantErr   error
	}{
		{
			name:      "owner can access",
			userID:    "user-1",
			sessionID: session.ID,
		},
		{
			name:      "other user is rejected",
			userID:    "user-2",
			sessionID: session.ID,
			wantErr:   ErrSessionNotOwned,
		},
		{
			name:      "unknown session",
			userID:    "user-1",
			sessionID: "non-existent",
			wantErr:   errors.New("session not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetSession(ctx, tt.userID, tt.sessionID)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("GetSession() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("GetSession() expected error, got nil")
			}
			if errors.Is(tt.wantErr, ErrSessionNotOwned) && !errors.Is(err, ErrSessionNotOwned) {
				t.Errorf("error = %v, want ErrSessionNotOwned", err)
			}
		})
	}
}

func TestUpdateSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Original"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		req     *UpdateSessionRequest
		wantErr bool
	}{
		{
			name: "update title",
			req:  &UpdateSessionRequest{Title: "Renamed"},
		},
		{
			name: "complete session",
			req:  &UpdateSessionRequest{Status: model.SessionStatusCompleted},
		},
		{
			name:    "invalid status rejected",
			req:     &UpdateSessionRequest{Status: "closed"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := svc.UpdateSession(ctx, "user-1", session.ID, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Error("UpdateSession() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateSession() unexpected error: %v", err)
			}
			if tt.req.Title != "" && updated.Title != tt.req.Title {
				t.Errorf("Title = %s, want %s", updated.Title, tt.req.Title)
			}
			if tt.req.Status != "" && updated.Status != tt.req.Status {
				t.Errorf("Status = %s, want %s", updated.Status, tt.req.Status)
			}
		})
	}
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	svc, chatRepo, emotionRepo := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Check-in"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	resp, err := svc.SendMessage(ctx, "user-1", session.ID, &SendMessageRequest{
		Content: "feeling sad and down",
	})
	if err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	if resp.Emotion != "sad" {
		t.Errorf("Emotion = %s, want sad", resp.Emotion)
	}
	if resp.Message == "" {
		t.Error("Message is empty")
	}
	if resp.SessionID != session.ID {
		t.Errorf("SessionID = %s, want %s", resp.SessionID, session.ID)
	}
	if len(resp.CopingStrategies) == 0 {
		t.Error("CopingStrategies is empty")
	}
	if resp.Analytics.EmotionConfidence != 23 {
		t.Errorf("EmotionConfidence = %d, want 23", resp.Analytics.EmotionConfidence)
	}

	// 一轮对话持久化一问一答
	messages := chatRepo.messages[session.ID]
	if len(messages) != 2 {
		t.Fatalf("stored messages = %d, want 2", len(messages))
	}
	if messages[0].Role != model.RoleMessageUser || messages[1].Role != model.RoleMessageAssistant {
		t.Errorf("message roles = %s/%s, want user/assistant", messages[0].Role, messages[1].Role)
	}
	// 助手消息携带同一轮检测出的情绪
	if messages[1].Emotion != messages[0].Emotion || messages[1].Confidence != messages[0].Confidence {
		t.Errorf("assistant emotion %s/%d differs from user %s/%d",
			messages[1].Emotion, messages[1].Confidence, messages[0].Emotion, messages[0].Confidence)
	}
	if resp.MessageID != messages[1].ID {
		t.Errorf("MessageID = %s, want assistant message ID %s", resp.MessageID, messages[1].ID)
	}

	// 每条用户消息派生一条情绪事件
	if len(emotionRepo.events) != 1 {
		t.Fatalf("emotion events = %d, want 1", len(emotionRepo.events))
	}
	event := emotionRepo.events[0]
	if event.Emotion != "sad" {
		t.Errorf("event Emotion = %s, want sad", event.Emotion)
	}
	if event.Intensity != 2 {
		t.Errorf("event Intensity = %d, want 2", event.Intensity)
	}
	if event.Context != "feeling sad and down" {
		t.Errorf("event Context = %q, want message content", event.Context)
	}

	// 统计按轮重写
	analytics, err := chatRepo.GetAnalyticsBySession(session.ID)
	if err != nil {
		t.Fatalf("analytics missing: %v", err)
	}
	if analytics.MessageCount != 2 {
		t.Errorf("MessageCount = %d, want 2", analytics.MessageCount)
	}
	if analytics.DominantEmotion != "sad" {
		t.Errorf("DominantEmotion = %s, want sad", analytics.DominantEmotion)
	}

	// 第二轮累计消息数
	if _, err := svc.SendMessage(ctx, "user-1", session.ID, &SendMessageRequest{Content: "I am so happy now"}); err != nil {
		t.Fatalf("second SendMessage() unexpected error: %v", err)
	}
	analytics, _ = chatRepo.GetAnalyticsBySession(session.ID)
	if analytics.MessageCount != 4 {
		t.Errorf("MessageCount after second turn = %d, want 4", analytics.MessageCount)
	}
	if analytics.DominantEmotion != "happy" {
		t.Errorf("DominantEmotion after second turn = %s, want happy", analytics.DominantEmotion)
	}
}

func TestSendMessageAnxiousFallbackTurn(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Exam worries"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	// 无模板、无语料时整轮依赖内置兜底
	resp, err := svc.SendMessage(ctx, "user-1", session.ID, &SendMessageRequest{
		Content: "I feel anxious about my exam",
	})
	if err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	if resp.Emotion != "anxious" {
		t.Errorf("Emotion = %s, want anxious", resp.Emotion)
	}
	if resp.Message == "" {
		t.Error("Message is empty, want built-in anxious reply")
	}
	if len(resp.CopingStrategies) == 0 {
		t.Error("CopingStrategies is empty")
	}
}

func TestSendMessageOwnership(t *testing.T) {
	ctx := context.Background()
	svc, chatRepo, emotionRepo := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Private"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	_, err = svc.SendMessage(ctx, "intruder", session.ID, &SendMessageRequest{Content: "hello"})
	if !errors.Is(err, ErrSessionNotOwned) {
		t.Errorf("error = %v, want ErrSessionNotOwned", err)
	}

	// 被拒绝的请求不落任何数据
	if len(chatRepo.messages[session.ID]) != 0 {
		t.Errorf("messages stored after rejected turn: %d", len(chatRepo.messages[session.ID]))
	}
	if len(emotionRepo.events) != 0 {
		t.Errorf("emotion events stored after rejected turn: %d", len(emotionRepo.events))
	}
}

func TestSendMessageTemplateStoreFailure(t *testing.T) {
	ctx := context.Background()
	svc, chatRepo, _, templateRepo := newTestServiceWithTemplates(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Check-in"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	// 模板库查询失败时本轮必须失败，而不是悄悄退化成兜底回复
	templateRepo.findErr = errors.New("pq: connection refused")
	resp, err := svc.SendMessage(ctx, "user-1", session.ID, &SendMessageRequest{Content: "I feel anxious"})

	if !errors.Is(err, ErrTurnFailed) {
		t.Fatalf("error = %v, want ErrTurnFailed", err)
	}
	if resp != nil {
		t.Errorf("response = %+v, want nil on failed turn", resp)
	}
	// 助手回复不应落库
	messages := chatRepo.messages[session.ID]
	for _, message := range messages {
		if message.Role == model.RoleMessageAssistant {
			t.Errorf("assistant message stored for failed turn: %q", message.Content)
		}
	}
}

func TestSendMessageStoreFailureHidesDetail(t *testing.T) {
	ctx := context.Background()
	svc, chatRepo, _ := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Check-in"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	chatRepo.createMsgError = errors.New("duplicate key value violates unique constraint")
	_, err = svc.SendMessage(ctx, "user-1", session.ID, &SendMessageRequest{Content: "hello"})

	if !errors.Is(err, ErrTurnFailed) {
		t.Fatalf("error = %v, want ErrTurnFailed", err)
	}
	// 对外只暴露统一文案，存储细节留在日志里
	if err.Error() != "failed to process message" {
		t.Errorf("error message = %q, want %q", err.Error(), "failed to process message")
	}
}

func TestGetMessages(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "History"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}
	if _, err := svc.SendMessage(ctx, "user-1", session.ID, &SendMessageRequest{Content: "feeling okay"}); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	messages, err := svc.GetMessages(ctx, "user-1", session.ID)
	if err != nil {
		t.Fatalf("GetMessages() unexpected error: %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("messages = %d, want 2", len(messages))
	}

	if _, err := svc.GetMessages(ctx, "user-2", session.ID); !errors.Is(err, ErrSessionNotOwned) {
		t.Errorf("error = %v, want ErrSessionNotOwned", err)
	}
}

func TestGetEmotionHistory(t *testing.T) {
	ctx := context.Background()
	svc, _, emotionRepo := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Mood log"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}
	if _, err := svc.SendMessage(ctx, "user-1", session.ID, &SendMessageRequest{Content: "feeling sad"}); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}
	emotionRepo.events = append(emotionRepo.events, &model.EmotionEvent{ID: "other", UserID: "user-2", Emotion: "happy", Intensity: 3})

	events, err := svc.GetEmotionHistory(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetEmotionHistory() unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Emotion != "sad" {
		t.Errorf("Emotion = %s, want sad", events[0].Emotion)
	}
}

func TestTrackEmotion(t *testing.T) {
	ctx := context.Background()
	svc, _, emotionRepo := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Mood"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		userID  string
		req     *TrackEmotionRequest
		wantErr bool
	}{
		{
			name:   "track without session",
			userID: "user-1",
			req:    &TrackEmotionRequest{Emotion: "anxious", Intensity: 7, Context: "before class"},
		},
		{
			name:   "track with owned session",
			userID: "user-1",
			req:    &TrackEmotionRequest{Emotion: "calm", Intensity: 3, SessionID: session.ID},
		},
		{
			name:    "unknown emotion rejected",
			userID:  "user-1",
			req:     &TrackEmotionRequest{Emotion: "melancholic", Intensity: 5},
			wantErr: true,
		},
		{
			name:    "foreign session rejected",
			userID:  "user-2",
			req:     &TrackEmotionRequest{Emotion: "sad", Intensity: 5, SessionID: session.ID},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := svc.TrackEmotion(ctx, tt.userID, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Error("TrackEmotion() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("TrackEmotion() unexpected error: %v", err)
			}
			if event.ID == "" {
				t.Error("event ID not generated")
			}
			if event.Emotion != tt.req.Emotion || event.Intensity != tt.req.Intensity {
				t.Errorf("event = %s/%d, want %s/%d", event.Emotion, event.Intensity, tt.req.Emotion, tt.req.Intensity)
			}
		})
	}

	if len(emotionRepo.events) != 2 {
		t.Errorf("stored events = %d, want 2", len(emotionRepo.events))
	}
}

func TestSendMessageTruncatesEventContext(t *testing.T) {
	ctx := context.Background()
	svc, _, emotionRepo := newTestService(t)

	session, err := svc.CreateSession(ctx, "user-1", &CreateSessionRequest{Title: "Long message"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	long := ""
	for i := 0; i < 30; i++ {
		long += "sad story "
	}
	if _, err := svc.SendMessage(ctx, "user-1", session.ID, &SendMessageRequest{Content: long}); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	event := emotionRepo.events[0]
	if got := len([]rune(event.Context)); got != 100 {
		t.Errorf("event Context length = %d, want 100", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{name: "short string unchanged", s: "hello", max: 10, want: "hello"},
		{name: "exactly max length", s: "hello", max: 5, want: "hello"},
		{name: "cut at max", s: "hello world", max: 5, want: "hello"},
		{name: "multibyte runes counted as characters", s: "你好世界再见", max: 4, want: "你好世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.s, tt.max); got != tt.want {
				t.Errorf("truncate() = %q, want %q", got, tt.want)
			}
		})
	}
}
