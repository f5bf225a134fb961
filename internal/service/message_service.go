package service

import (
	"context"

	"pixelgram/internal/featureflags"
	"pixelgram/internal/models"
	"pixelgram/internal/repository"
	"pixelgram/internal/validation"
)

// MessagePublisher pushes a stored message to connected clients. Delivery is
// best effort and never fails the send.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, msg *models.Message)
}

type MessageService struct {
	users     repository.UserRepository
	messages  repository.MessageRepository
	publisher MessagePublisher
	flags     *featureflags.Manager
}

func NewMessageService(store *repository.Store, publisher MessagePublisher, flags *featureflags.Manager) *MessageService {
	return &MessageService{
		users:     store.Users,
		messages:  store.Messages,
		publisher: publisher,
		flags:     flags,
	}
}

// Send stores a direct message and pushes it to the participants when
// message push is enabled for the sender.
func (s *MessageService) Send(ctx context.Context, senderID uint, cmd validation.SendMessage) (*models.Message, error) {
	if _, err := s.users.GetByID(ctx, cmd.ReceiverID); err != nil {
		return nil, err
	}
	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: cmd.ReceiverID,
		Content:    cmd.Content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	if s.publisher != nil && s.flags.Enabled(featureflags.MessagePush, senderID) {
		s.publisher.PublishMessage(ctx, msg)
	}
	return msg, nil
}
