package project

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/events"
	"go-estate-crm/internal/features/area"

	"go.uber.org/zap"
)

type ProjectService interface {
	ListProjects() []models.Project
	GetProject(id string) (models.Project, bool)
	ProjectsByArea(areaID string) []models.Project
	AddProject(ctx context.Context, input models.ProjectInput) (models.Project, error)
	UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, bool, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
}

type ProjectServiceImpl struct {
	Repo        ProjectRepository
	AreaService area.AreaService
	Events      events.Publisher
	Clock       models.Clock
	NewID       models.IDGenerator
	Logger      *zap.Logger
}

func NewProjectService(repo ProjectRepository, areaService area.AreaService, publisher events.Publisher, clock models.Clock, newID models.IDGenerator, logger *zap.Logger) ProjectService {
	return &ProjectServiceImpl{
		Repo:        repo,
		AreaService: areaService,
		Events:      publisher,
		Clock:       clock,
		NewID:       newID,
		Logger:      logger,
	}
}

func (s *ProjectServiceImpl) ListProjects() []models.Project {
	return s.Repo.FindAll()
}

func (s *ProjectServiceImpl) GetProject(id string) (models.Project, bool) {
	return s.Repo.FindByID(id)
}

func (s *ProjectServiceImpl) ProjectsByArea(areaID string) []models.Project {
	return s.Repo.FindByArea(areaID)
}

// AddProject copies the area name onto the project. An unknown area leaves the
// name blank.
func (s *ProjectServiceImpl) AddProject(ctx context.Context, input models.ProjectInput) (models.Project, error) {
	project := models.Project{
		ID:               s.NewID(),
		Name:             input.Name,
		Developer:        input.Developer,
		AreaID:           input.AreaID,
		TotalUnits:       input.TotalUnits,
		Status:           input.Status,
		DeliveryDate:     input.DeliveryDate,
		InstallmentPlans: input.InstallmentPlans,
		CreatedAt:        s.Clock(),
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusUpcoming
	}

	if a, ok := s.AreaService.GetArea(input.AreaID); ok {
		project.AreaName = a.Name
	} else {
		s.Logger.Warn("project references unknown area", zap.String("areaId", input.AreaID))
	}

	if err := s.Repo.Create(ctx, project); err != nil {
		return models.Project{}, err
	}
	s.publish(project.ID, events.ActionCreate)
	return project, nil
}

func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, bool, error) {
	project, found, err := s.Repo.Update(ctx, id, patch)
	if err != nil || !found {
		return project, found, err
	}
	s.publish(id, events.ActionUpdate)
	return project, true, nil
}

// DeleteProject leaves units and leads of the project in place.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id string) (bool, error) {
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.publish(id, events.ActionDelete)
	return true, nil
}

func (s *ProjectServiceImpl) publish(id, action string) {
	s.Events.Publish(events.Change{Collection: models.CollectionProjects, RecordID: id, Action: action})
	s.Logger.Debug("project changed", zap.String("id", id), zap.String("action", action))
}
