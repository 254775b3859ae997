package lead

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/config"
	"go-estate-crm/internal/events"
	"go-estate-crm/internal/features/area"
	"go-estate-crm/internal/features/project"
	"go-estate-crm/internal/features/settings"

	"go.uber.org/zap"
)

type LeadService interface {
	ListLeads() []models.Lead
	GetLead(id string) (models.Lead, bool)
	AddLead(ctx context.Context, input models.LeadInput) (models.Lead, error)
	UpdateLead(ctx context.Context, id string, patch models.LeadPatch) (models.Lead, bool, error)
	DeleteLead(ctx context.Context, id string) (bool, error)
	WhatsAppLink(lead models.Lead) string
}

type LeadServiceImpl struct {
	Repo            LeadRepository
	AreaService     area.AreaService
	ProjectService  project.ProjectService
	SettingsService settings.SettingsService
	Events          events.Publisher
	Clock           models.Clock
	NewID           models.IDGenerator
	Region          string
	Logger          *zap.Logger
}

func NewLeadService(repo LeadRepository, areaService area.AreaService, projectService project.ProjectService, settingsService settings.SettingsService,
	publisher events.Publisher, clock models.Clock, newID models.IDGenerator, cfg *config.Config, logger *zap.Logger) LeadService {
	return &LeadServiceImpl{
		Repo:            repo,
		AreaService:     areaService,
		ProjectService:  projectService,
		SettingsService: settingsService,
		Events:          publisher,
		Clock:           clock,
		NewID:           newID,
		Region:          cfg.DefaultRegion,
		Logger:          logger,
	}
}

func (s *LeadServiceImpl) ListLeads() []models.Lead {
	return s.Repo.FindAll()
}

func (s *LeadServiceImpl) GetLead(id string) (models.Lead, bool) {
	return s.Repo.FindByID(id)
}

// AddLead resolves area, project and sales rep names from their ids. A name
// the caller supplied is kept when its reference does not resolve.
func (s *LeadServiceImpl) AddLead(ctx context.Context, input models.LeadInput) (models.Lead, error) {
	lead := models.Lead{
		ID:                     s.NewID(),
		Name:                   input.Name,
		Email:                  input.Email,
		Phone:                  input.Phone,
		Status:                 input.Status,
		FollowUp:               input.FollowUp,
		Source:                 input.Source,
		AreaID:                 input.AreaID,
		AreaName:               input.AreaName,
		ProjectID:              input.ProjectID,
		ProjectName:            input.ProjectName,
		AssignedTo:             input.AssignedTo,
		AssignedToName:         input.AssignedToName,
		PreferredPaymentMethod: input.PreferredPaymentMethod,
		CreatedAt:              s.Clock(),
	}
	if input.Budget != nil {
		b := *input.Budget
		lead.Budget = &b
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if lead.FollowUp == "" {
		lead.FollowUp = models.FollowUpPending
	}

	if lead.AreaID != "" {
		if a, ok := s.AreaService.GetArea(lead.AreaID); ok {
			lead.AreaName = a.Name
		} else {
			s.Logger.Warn("lead references unknown area", zap.String("areaId", lead.AreaID))
		}
	}
	if lead.ProjectID != "" {
		if p, ok := s.ProjectService.GetProject(lead.ProjectID); ok {
			lead.ProjectName = p.Name
		} else {
			s.Logger.Warn("lead references unknown project", zap.String("projectId", lead.ProjectID))
		}
	}
	if lead.AssignedTo != "" {
		if rep, ok := s.SettingsService.GetSalesRep(lead.AssignedTo); ok {
			lead.AssignedToName = rep.Name
		} else {
			s.Logger.Warn("lead assigned to unknown sales rep", zap.String("assignedTo", lead.AssignedTo))
		}
	}

	if err := s.Repo.Create(ctx, lead); err != nil {
		return models.Lead{}, err
	}
	s.publish(lead.ID, events.ActionCreate)
	return lead, nil
}

func (s *LeadServiceImpl) UpdateLead(ctx context.Context, id string, patch models.LeadPatch) (models.Lead, bool, error) {
	lead, found, err := s.Repo.Update(ctx, id, patch)
	if err != nil || !found {
		return lead, found, err
	}
	s.publish(id, events.ActionUpdate)
	return lead, true, nil
}

func (s *LeadServiceImpl) DeleteLead(ctx context.Context, id string) (bool, error) {
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.publish(id, events.ActionDelete)
	return true, nil
}

func (s *LeadServiceImpl) WhatsAppLink(lead models.Lead) string {
	s.Logger.Info("whatsapp interaction", zap.String("leadId", lead.ID))
	return WhatsAppLink(lead, s.Region)
}

func (s *LeadServiceImpl) publish(id, action string) {
	s.Events.Publish(events.Change{Collection: models.CollectionLeads, RecordID: id, Action: action})
	s.Logger.Debug("lead changed", zap.String("id", id), zap.String("action", action))
}
