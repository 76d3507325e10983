package usecase

import (
	"campus-events/internal/data/repository"
	"campus-events/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Event   EventService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Event:   NewEventService(repo.Event, log),
		Booking: NewBookingService(repo, log),
	}
}
