package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"sync"

	"go.uber.org/zap"
	"monastery/internal/models/db_models"
	"monastery/internal/models/request_models"
	"monastery/internal/models/response_models"
	"monastery/internal/repositories"
	"monastery/pkg/utils"
)

const MaxContactPageSize = 100

// ContactPage is one page of the admin inbox.
type ContactPage struct {
	Messages []response_models.ContactMessage `json:"messages"`
	Page     int                              `json:"page"`
	PageSize int                              `json:"page_size"`
	Total    int64                            `json:"total"`
}

type ContactServiceInterface interface {
	SubmitMessage(ctx context.Context, request request_models.ContactRequest) (response_models.ContactMessage, error)
	ListMessages(ctx context.Context, page, pageSize int) (ContactPage, error)
	// Wait blocks until pending notifications have been attempted.
	Wait()
}

type ContactService struct {
	contactRepo repositories.ContactRepositoryInterface
	mailer      IMailService
	logger      *zap.Logger
	pending     sync.WaitGroup
}

func NewContactService(contactRepo repositories.ContactRepositoryInterface, mailer IMailService, logger *zap.Logger) ContactServiceInterface {
	return &ContactService{contactRepo: contactRepo, mailer: mailer, logger: logger}
}

func (s *ContactService) SubmitMessage(ctx context.Context, request request_models.ContactRequest) (response_models.ContactMessage, error) {
	name := strings.TrimSpace(request.Name)
	email := strings.TrimSpace(request.Email)
	body := strings.TrimSpace(request.Message)
	if name == "" || email == "" || body == "" {
		return response_models.ContactMessage{}, utils.ErrMissingFields
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return response_models.ContactMessage{}, utils.ErrMissingFields
	}

	message := &db_models.ContactMessage{Name: name, Email: email, Message: body}
	if err := s.contactRepo.CreateMessage(ctx, message); err != nil {
		return response_models.ContactMessage{}, errors.Join(utils.ErrDatabaseError, err)
	}

	s.logger.Info("contact message stored", zap.String("id", message.ID.String()))

	// Notification failures never fail the submission.
	saved := *message
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.mailer.SendContactNotification(saved); err != nil {
			s.logger.Error("contact notification failed", zap.String("id", saved.ID.String()), zap.Error(err))
		}
	}()

	return toContactResponse(saved), nil
}

func (s *ContactService) ListMessages(ctx context.Context, page, pageSize int) (ContactPage, error) {
	if page < 1 {
		return ContactPage{}, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > MaxContactPageSize {
		return ContactPage{}, utils.ErrInvalidPageSize
	}

	messages, err := s.contactRepo.ListMessages(ctx, page, pageSize)
	if err != nil {
		return ContactPage{}, errors.Join(utils.ErrDatabaseError, err)
	}
	total, err := s.contactRepo.CountMessages(ctx)
	if err != nil {
		return ContactPage{}, errors.Join(utils.ErrDatabaseError, err)
	}

	out := make([]response_models.ContactMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, toContactResponse(m))
	}
	return ContactPage{Messages: out, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *ContactService) Wait() {
	s.pending.Wait()
}

func toContactResponse(m db_models.ContactMessage) response_models.ContactMessage {
	return response_models.ContactMessage{
		ID:          m.ID.String(),
		Name:        m.Name,
		Email:       m.Email,
		Message:     m.Message,
		SubmittedAt: utils.FormatRFC3339IST(utils.FromUnixSecondsIST(m.CreatedAt)),
	}
}
