package service

import (
	"context"

	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
)

type MessageOptions struct {
	// StrictRecipient requires the recipient to be the sender's counterpart
	// on the request. When false the recipient is stored as given.
	StrictRecipient bool
}

type messageService struct {
	messageRepo repository.MessageRepository
	rentalRepo  repository.RentalRepository
	names       resolver
	opts        MessageOptions
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	rentalRepo repository.RentalRepository,
	userRepo repository.UserRepository,
	opts MessageOptions,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		rentalRepo:  rentalRepo,
		names:       resolver{users: userRepo},
		opts:        opts,
	}
}

// Send stores a message on a request the sender takes part in. Unless
// StrictRecipient is set, RecipientID is not checked against the request, so
// a participant can address any user id. This is a known gap kept for
// compatibility with existing clients.
func (s *messageService) Send(ctx context.Context, sender *domain.User, in SendMessageInput) (*MessageView, error) {
	const method = "messageService.Send"
	logger.EnterMethod(ctx, method, "senderID", sender.ID, "requestID", in.RequestID)

	rt, err := participantRequest(ctx, s.rentalRepo, sender.ID, in.RequestID, domain.ErrNotParticipant)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "requestID", in.RequestID)
	}

	if s.opts.StrictRecipient && in.RecipientID != rt.Counterpart(sender.ID) {
		return nil, exitWithError(ctx, method, domain.ErrInvalidRecipient, "recipientID", in.RecipientID)
	}

	m := &domain.Message{
		SenderID:    sender.ID,
		RecipientID: in.RecipientID,
		RequestID:   rt.ID,
		Content:     in.Content,
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, exitWithError(ctx, method, err, "requestID", rt.ID)
	}

	view := s.names.messageView(ctx, *m)
	logger.ExitMethod(ctx, method, "messageID", m.ID)
	return &view, nil
}

func (s *messageService) ListForRequest(ctx context.Context, caller *domain.User, requestID string) ([]MessageView, error) {
	const method = "messageService.ListForRequest"
	logger.EnterMethod(ctx, method, "userID", caller.ID, "requestID", requestID)

	rt, err := participantRequest(ctx, s.rentalRepo, caller.ID, requestID, domain.ErrNotParticipant)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "requestID", requestID)
	}

	list, err := s.messageRepo.ListByRequest(ctx, rt.ID, maxMessages)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "requestID", requestID)
	}

	views := make([]MessageView, 0, len(list))
	for _, m := range list {
		views = append(views, s.names.messageView(ctx, m))
	}

	logger.ExitMethod(ctx, method, "count", len(views))
	return views, nil
}
