package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-events/internal/data/entity"
	"campus-events/internal/data/repository"
	"campus-events/internal/dto/request"
	"campus-events/internal/dto/response"
	"campus-events/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	ListEvents(ctx context.Context) ([]response.EventResponse, error)
	GetEventBySlug(ctx context.Context, slug string) (*response.EventResponse, error)

	// Admin
	CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	log       *zap.Logger
}

func NewEventService(eventRepo repository.EventRepository, log *zap.Logger) EventService {
	return &eventService{
		eventRepo: eventRepo,
		log:       log.With(zap.String("service", "event")),
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.eventRepo.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list events", zap.Error(err))
		return nil, fmt.Errorf("list events: %w", err)
	}

	eventResponses := make([]response.EventResponse, len(events))
	for i, event := range events {
		eventResponses[i] = response.EventToResponse(event)
	}

	return eventResponses, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*response.EventResponse, error) {
	event, err := s.eventRepo.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to get event", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s not found", slug)
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.eventRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		s.log.Error("Failed to check event slug", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("check event slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("event slug %s already exists", req.Slug)
	}

	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Slug:      req.Slug,
		Name:      req.Name,
		Location:  req.Location,
		EventDate: req.EventDate,
		EventTime: req.EventTime,
		IsActive:  true,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.log.Error("Failed to create event", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("slug", event.Slug),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}
