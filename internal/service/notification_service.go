package service

import (
	"context"

	"roadassist/internal/domain"

	"github.com/google/uuid"
)

type notificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Notification, error) {
	return s.repo.ListByAccount(ctx, accountID)
}
