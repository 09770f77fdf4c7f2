//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"

	"sockchat/contract"
	"sockchat/domain"
	"sockchat/runtime"
)

// IChatService is the transport-facing surface of the engine. Handlers
// depend on this interface so they can be tested against a mock.
type IChatService interface {
	Register(ctx context.Context, id domain.ConnectionID, sink contract.EventSink, username string) error
	Disconnect(ctx context.Context, id domain.ConnectionID)
	SendPublic(ctx context.Context, id domain.ConnectionID, text string)
	SendPrivate(ctx context.Context, id domain.ConnectionID, to, text string)
	SetTyping(ctx context.Context, id domain.ConnectionID, isTyping bool)
	OnlineUsers() []domain.Session
	PrivateHistory(ctx context.Context, userA, userB string, limit int) ([]domain.PrivateMessage, error)
}

type ChatService struct {
	engine *runtime.Engine
}

func NewChatService(engine *runtime.Engine) *ChatService {
	return &ChatService{engine: engine}
}

func (s *ChatService) Register(ctx context.Context, id domain.ConnectionID, sink contract.EventSink, username string) error {
	return s.engine.Register(ctx, id, sink, username)
}

func (s *ChatService) Disconnect(ctx context.Context, id domain.ConnectionID) {
	s.engine.Disconnect(ctx, id)
}

func (s *ChatService) SendPublic(ctx context.Context, id domain.ConnectionID, text string) {
	s.engine.SendPublic(ctx, id, text)
}

func (s *ChatService) SendPrivate(ctx context.Context, id domain.ConnectionID, to, text string) {
	s.engine.SendPrivate(ctx, id, to, text)
}

func (s *ChatService) SetTyping(ctx context.Context, id domain.ConnectionID, isTyping bool) {
	s.engine.SetTyping(ctx, id, isTyping)
}

func (s *ChatService) OnlineUsers() []domain.Session {
	return s.engine.OnlineUsers()
}

func (s *ChatService) PrivateHistory(ctx context.Context, userA, userB string, limit int) ([]domain.PrivateMessage, error) {
	return s.engine.PrivateHistory(ctx, userA, userB, limit)
}
