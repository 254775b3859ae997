package area

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/events"

	"go.uber.org/zap"
)

type AreaService interface {
	ListAreas() []models.Area
	GetArea(id string) (models.Area, bool)
	AddArea(ctx context.Context, input models.AreaInput) (models.Area, error)
	UpdateArea(ctx context.Context, id string, patch models.AreaPatch) (models.Area, bool, error)
	DeleteArea(ctx context.Context, id string) (bool, error)
}

type AreaServiceImpl struct {
	Repo   AreaRepository
	Events events.Publisher
	Clock  models.Clock
	NewID  models.IDGenerator
	Logger *zap.Logger
}

func NewAreaService(repo AreaRepository, publisher events.Publisher, clock models.Clock, newID models.IDGenerator, logger *zap.Logger) AreaService {
	return &AreaServiceImpl{
		Repo:   repo,
		Events: publisher,
		Clock:  clock,
		NewID:  newID,
		Logger: logger,
	}
}

func (s *AreaServiceImpl) ListAreas() []models.Area {
	return s.Repo.FindAll()
}

func (s *AreaServiceImpl) GetArea(id string) (models.Area, bool) {
	return s.Repo.FindByID(id)
}

func (s *AreaServiceImpl) AddArea(ctx context.Context, input models.AreaInput) (models.Area, error) {
	area := models.Area{
		ID:        s.NewID(),
		Name:      input.Name,
		City:      input.City,
		CreatedAt: s.Clock(),
	}
	if err := s.Repo.Create(ctx, area); err != nil {
		return models.Area{}, err
	}
	s.publish(area.ID, events.ActionCreate)
	return area, nil
}

func (s *AreaServiceImpl) UpdateArea(ctx context.Context, id string, patch models.AreaPatch) (models.Area, bool, error) {
	area, found, err := s.Repo.Update(ctx, id, patch)
	if err != nil || !found {
		return area, found, err
	}
	s.publish(id, events.ActionUpdate)
	return area, true, nil
}

// DeleteArea does not touch projects, units or leads that still point at the area.
func (s *AreaServiceImpl) DeleteArea(ctx context.Context, id string) (bool, error) {
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.publish(id, events.ActionDelete)
	return true, nil
}

func (s *AreaServiceImpl) publish(id, action string) {
	s.Events.Publish(events.Change{Collection: models.CollectionAreas, RecordID: id, Action: action})
	s.Logger.Debug("area changed", zap.String("id", id), zap.String("action", action))
}
