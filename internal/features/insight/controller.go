package insight

import (
	"github.com/gofiber/fiber/v2"
)

type InsightController struct {
	Service InsightService
}

func NewInsightController(service InsightService) *InsightController {
	return &InsightController{
		Service: service,
	}
}

// GetAreaInsights godoc
// @Summary      Per-area counts
// @Description  Leads, projects and units per area, most leads first
// @Tags         insights
// @Produce      json
// @Success      200  {array}   models.AreaInsight
// @Router       /api/insights/areas [get]
func (ctrl *InsightController) GetAreaInsights(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.AreaInsights())
}

// GetDashboard godoc
// @Summary      Dashboard stats
// @Tags         insights
// @Produce      json
// @Success      200  {object}  models.DashboardStats
// @Router       /api/insights/dashboard [get]
func (ctrl *InsightController) GetDashboard(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.Dashboard())
}

// GetDanglingReferences godoc
// @Summary      Stale references
// @Description  Records whose areaId, projectId or assignedTo points at a deleted record
// @Tags         insights
// @Produce      json
// @Success      200  {array}   models.DanglingReference
// @Router       /api/insights/dangling [get]
func (ctrl *InsightController) GetDanglingReferences(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.DanglingReferences())
}
