package repository

import (
	"context"
	"fmt"

	"campus-events/internal/data/entity"
	"campus-events/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Event, error)
	FindAllActive(ctx context.Context) ([]*entity.Event, error)
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, slug, name, location, event_date, event_time, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Slug,
		event.Name,
		event.Location,
		event.EventDate,
		event.EventTime,
		event.IsActive,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("slug", event.Slug),
		)
		return fmt.Errorf("create event %s: %w", event.Slug, err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, slug, name, location, event_date, event_time, is_active, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	var event entity.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Slug,
		&event.Name,
		&event.Location,
		&event.EventDate,
		&event.EventTime,
		&event.IsActive,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return &event, nil
}

func (r *eventRepository) FindBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	query := `
		SELECT id, slug, name, location, event_date, event_time, is_active, created_at, updated_at
		FROM events
		WHERE slug = $1 AND is_active = true
	`

	var event entity.Event
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&event.ID,
		&event.Slug,
		&event.Name,
		&event.Location,
		&event.EventDate,
		&event.EventTime,
		&event.IsActive,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find event by slug %s: %w", slug, err)
	}

	return &event, nil
}

func (r *eventRepository) FindAllActive(ctx context.Context) ([]*entity.Event, error) {
	query := `
		SELECT id, slug, name, location, event_date, event_time, is_active, created_at, updated_at
		FROM events
		WHERE is_active = true
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active events", zap.Error(err))
		return nil, fmt.Errorf("find active events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		var event entity.Event
		err := rows.Scan(
			&event.ID,
			&event.Slug,
			&event.Name,
			&event.Location,
			&event.EventDate,
			&event.EventTime,
			&event.IsActive,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, &event)
	}

	return events, nil
}
