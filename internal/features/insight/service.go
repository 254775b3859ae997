package insight

import (
	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/features/area"
	"go-estate-crm/internal/features/lead"
	"go-estate-crm/internal/features/project"
	"go-estate-crm/internal/features/settings"
	"go-estate-crm/internal/features/unit"
)

// InsightService recomputes everything on every call. Nothing it returns is stored.
type InsightService interface {
	AreaInsights() []models.AreaInsight
	Dashboard() models.DashboardStats
	DanglingReferences() []models.DanglingReference
}

type InsightServiceImpl struct {
	AreaService     area.AreaService
	ProjectService  project.ProjectService
	UnitService     unit.UnitService
	LeadService     lead.LeadService
	SettingsService settings.SettingsService
}

func NewInsightService(areaService area.AreaService, projectService project.ProjectService, unitService unit.UnitService,
	leadService lead.LeadService, settingsService settings.SettingsService) InsightService {
	return &InsightServiceImpl{
		AreaService:     areaService,
		ProjectService:  projectService,
		UnitService:     unitService,
		LeadService:     leadService,
		SettingsService: settingsService,
	}
}

func (s *InsightServiceImpl) snapshot() Snapshot {
	return Snapshot{
		Areas:     s.AreaService.ListAreas(),
		Projects:  s.ProjectService.ListProjects(),
		Units:     s.UnitService.ListUnits(),
		Leads:     s.LeadService.ListLeads(),
		SalesReps: s.SettingsService.SalesReps(),
	}
}

func (s *InsightServiceImpl) AreaInsights() []models.AreaInsight {
	return AreaInsights(s.snapshot())
}

func (s *InsightServiceImpl) Dashboard() models.DashboardStats {
	return Dashboard(s.snapshot())
}

func (s *InsightServiceImpl) DanglingReferences() []models.DanglingReference {
	return DanglingReferences(s.snapshot())
}
