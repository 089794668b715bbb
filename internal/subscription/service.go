package subscription

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/dualinkhq/dualink-api/internal/inspiration"
	"github.com/dualinkhq/dualink-api/internal/mail"
	"github.com/dualinkhq/dualink-api/pkg/util"
)

var ErrInvalidEmail = errors.New("a valid email is required")

type SubscriptionService struct {
	repo        SubscriptionRepo
	inspService inspiration.InspirationService
	mail        *mail.Mailer
}

func NewSubscriptionService(repo SubscriptionRepo, inspService inspiration.InspirationService, mail *mail.Mailer) SubscriptionService {
	return SubscriptionService{
		repo:        repo,
		inspService: inspService,
		mail:        mail,
	}
}

func (s *SubscriptionService) Subscribe(ctx context.Context, req SubscribeRequest) (*Subscriber, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	sub := &Subscriber{
		ID:         uuid.New(),
		Email:      email,
		Phone:      strings.TrimSpace(req.Phone),
		EmailOptIn: req.EmailOptIn,
		SmsOptIn:   req.SmsOptIn,
	}

	if err := s.repo.Upsert(ctx, sub); err != nil {
		log.Printf("error saving subscriber %s: %v", email, err)
		return nil, err
	}

	return sub, nil
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, token string) error {
	claims, err := util.ValidateUnsubscribeToken(token)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(claims.SubscriberID)
	if err != nil {
		return err
	}

	return s.repo.Unsubscribe(ctx, id)
}
