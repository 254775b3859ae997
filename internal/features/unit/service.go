package unit

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/events"
	"go-estate-crm/internal/features/project"

	"go.uber.org/zap"
)

type UnitService interface {
	ListUnits() []models.Unit
	FilterUnits(filter UnitFilter) []models.Unit
	GetUnit(id string) (models.Unit, bool)
	AddUnit(ctx context.Context, input models.UnitInput) (models.Unit, error)
	UpdateUnit(ctx context.Context, id string, patch models.UnitPatch) (models.Unit, bool, error)
	DeleteUnit(ctx context.Context, id string) (bool, error)
}

type UnitServiceImpl struct {
	Repo           UnitRepository
	ProjectService project.ProjectService
	Events         events.Publisher
	Clock          models.Clock
	NewID          models.IDGenerator
	Logger         *zap.Logger
}

func NewUnitService(repo UnitRepository, projectService project.ProjectService, publisher events.Publisher, clock models.Clock, newID models.IDGenerator, logger *zap.Logger) UnitService {
	return &UnitServiceImpl{
		Repo:           repo,
		ProjectService: projectService,
		Events:         publisher,
		Clock:          clock,
		NewID:          newID,
		Logger:         logger,
	}
}

func (s *UnitServiceImpl) ListUnits() []models.Unit {
	return s.Repo.FindAll()
}

func (s *UnitServiceImpl) FilterUnits(filter UnitFilter) []models.Unit {
	return s.Repo.Find(filter)
}

func (s *UnitServiceImpl) GetUnit(id string) (models.Unit, bool) {
	return s.Repo.FindByID(id)
}

// AddUnit takes projectName, areaId and areaName from the referenced project.
// An unknown project leaves all three blank.
func (s *UnitServiceImpl) AddUnit(ctx context.Context, input models.UnitInput) (models.Unit, error) {
	unit := models.Unit{
		ID:               s.NewID(),
		ProjectID:        input.ProjectID,
		UnitNumber:       input.UnitNumber,
		Type:             input.Type,
		Size:             input.Size,
		Price:            input.Price,
		OwnerName:        input.OwnerName,
		OwnerPhone:       input.OwnerPhone,
		Photos:           append([]string{}, input.Photos...),
		Status:           input.Status,
		FinishingStatus:  input.FinishingStatus,
		DeliveryDate:     input.DeliveryDate,
		PaymentMethod:    input.PaymentMethod,
		InstallmentPlans: input.InstallmentPlans,
		CreatedAt:        s.Clock(),
	}
	if unit.Status == "" {
		unit.Status = models.UnitStatusAvailable
	}
	if unit.FinishingStatus == "" {
		unit.FinishingStatus = models.FinishingFullyFinished
	}
	if unit.PaymentMethod == "" {
		unit.PaymentMethod = models.PaymentCash
	}

	if p, ok := s.ProjectService.GetProject(input.ProjectID); ok {
		unit.ProjectName = p.Name
		unit.AreaID = p.AreaID
		unit.AreaName = p.AreaName
	} else {
		s.Logger.Warn("unit references unknown project", zap.String("projectId", input.ProjectID))
	}

	if err := s.Repo.Create(ctx, unit); err != nil {
		return models.Unit{}, err
	}
	s.publish(unit.ID, events.ActionCreate)
	return unit, nil
}

func (s *UnitServiceImpl) UpdateUnit(ctx context.Context, id string, patch models.UnitPatch) (models.Unit, bool, error) {
	unit, found, err := s.Repo.Update(ctx, id, patch)
	if err != nil || !found {
		return unit, found, err
	}
	s.publish(id, events.ActionUpdate)
	return unit, true, nil
}

func (s *UnitServiceImpl) DeleteUnit(ctx context.Context, id string) (bool, error) {
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.publish(id, events.ActionDelete)
	return true, nil
}

func (s *UnitServiceImpl) publish(id, action string) {
	s.Events.Publish(events.Change{Collection: models.CollectionUnits, RecordID: id, Action: action})
	s.Logger.Debug("unit changed", zap.String("id", id), zap.String("action", action))
}
