package insight

import (
	"sort"

	"go-estate-crm/internal/common/models"
)

const recentLimit = 5

// Snapshot is one consistent read of every collection the aggregator needs.
type Snapshot struct {
	Areas     []models.Area
	Projects  []models.Project
	Units     []models.Unit
	Leads     []models.Lead
	SalesReps []models.User
}

// AreaInsights counts leads, projects and units per area by areaId and orders
// the areas by lead count, highest first. Ties keep area order.
func AreaInsights(s Snapshot) []models.AreaInsight {
	leads := countBy(s.Leads, func(l models.Lead) string { return l.AreaID })
	projects := countBy(s.Projects, func(p models.Project) string { return p.AreaID })
	units := countBy(s.Units, func(u models.Unit) string { return u.AreaID })

	out := make([]models.AreaInsight, 0, len(s.Areas))
	for _, a := range s.Areas {
		out = append(out, models.AreaInsight{
			AreaID:        a.ID,
			AreaName:      a.Name,
			LeadsCount:    leads[a.ID],
			ProjectsCount: projects[a.ID],
			UnitsCount:    units[a.ID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LeadsCount > out[j].LeadsCount
	})
	return out
}

func Dashboard(s Snapshot) models.DashboardStats {
	stats := models.DashboardStats{
		TotalLeads:   len(s.Leads),
		AreasCovered: len(s.Areas),
		RecentLeads:  head(s.Leads),
		RecentUnits:  head(s.Units),
		TopAreas:     head(AreaInsights(s)),
	}
	for _, p := range s.Projects {
		if p.Status == models.ProjectStatusOngoing {
			stats.ActiveProjects++
		}
	}
	for _, u := range s.Units {
		if u.Status == models.UnitStatusAvailable {
			stats.AvailableUnits++
		}
	}
	return stats
}

// DanglingReferences lists each set reference field whose target no longer exists.
func DanglingReferences(s Snapshot) []models.DanglingReference {
	areas := idSet(s.Areas, func(a models.Area) string { return a.ID })
	projects := idSet(s.Projects, func(p models.Project) string { return p.ID })
	reps := idSet(s.SalesReps, func(u models.User) string { return u.ID })

	out := []models.DanglingReference{}
	check := func(collection, recordID, field, ref string, live map[string]struct{}) {
		if ref == "" {
			return
		}
		if _, ok := live[ref]; !ok {
			out = append(out, models.DanglingReference{Collection: collection, RecordID: recordID, Field: field, RefID: ref})
		}
	}

	for _, p := range s.Projects {
		check(models.CollectionProjects, p.ID, "areaId", p.AreaID, areas)
	}
	for _, u := range s.Units {
		check(models.CollectionUnits, u.ID, "projectId", u.ProjectID, projects)
		check(models.CollectionUnits, u.ID, "areaId", u.AreaID, areas)
	}
	for _, l := range s.Leads {
		check(models.CollectionLeads, l.ID, "areaId", l.AreaID, areas)
		check(models.CollectionLeads, l.ID, "projectId", l.ProjectID, projects)
		check(models.CollectionLeads, l.ID, "assignedTo", l.AssignedTo, reps)
	}
	return out
}

func countBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

func idSet[T any](items []T, id func(T) string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[id(item)] = struct{}{}
	}
	return set
}

func head[T any](items []T) []T {
	if len(items) > recentLimit {
		items = items[:recentLimit]
	}
	return append([]T{}, items...)
}
