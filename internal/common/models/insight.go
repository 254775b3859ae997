package models

// AreaInsight is derived on every read and never persisted.
type AreaInsight struct {
	AreaID        string `json:"areaId"`
	AreaName      string `json:"areaName"`
	LeadsCount    int    `json:"leadsCount"`
	ProjectsCount int    `json:"projectsCount"`
	UnitsCount    int    `json:"unitsCount"`
}

// DanglingReference names a record whose reference field points at nothing.
type DanglingReference struct {
	Collection string `json:"collection"`
	RecordID   string `json:"recordId"`
	Field      string `json:"field"`
	RefID      string `json:"refId"`
}

type DashboardStats struct {
	TotalLeads     int           `json:"totalLeads"`
	ActiveProjects int           `json:"activeProjects"`
	AreasCovered   int           `json:"areasCovered"`
	AvailableUnits int           `json:"availableUnits"`
	RecentLeads    []Lead        `json:"recentLeads"`
	RecentUnits    []Unit        `json:"recentUnits"`
	TopAreas       []AreaInsight `json:"topAreas"`
}
