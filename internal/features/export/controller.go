package export

import (
	"fmt"

	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/features/auth"
	"go-estate-crm/internal/features/lead"
	"go-estate-crm/internal/features/unit"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExportController struct {
	Service     ExportService
	LeadService lead.LeadService
	UnitService unit.UnitService
}

func NewExportController(service ExportService, leadService lead.LeadService, unitService unit.UnitService) *ExportController {
	return &ExportController{
		Service:     service,
		LeadService: leadService,
		UnitService: unitService,
	}
}

// ExportLeads godoc
// @Summary      Export leads
// @Description  Download the leads visible to the session user as an Excel workbook
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/export/leads.xlsx [get]
func (ctrl *ExportController) ExportLeads(c *fiber.Ctx) error {
	leads := auth.FilterVisible(middleware.UserFrom(c), ctrl.LeadService.ListLeads())
	data, err := ctrl.Service.ExportLeads(c.UserContext(), leads)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return sendWorkbook(c, "leads.xlsx", data)
}

// ExportUnits godoc
// @Summary      Export units
// @Description  Download units as an Excel workbook. Accepts the same filters as GET /api/units
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/export/units.xlsx [get]
func (ctrl *ExportController) ExportUnits(c *fiber.Ctx) error {
	var filter unit.UnitFilter
	if err := c.QueryParser(&filter); err != nil {
		return api.Error(c, fiber.StatusBadRequest, "Invalid filter")
	}
	data, err := ctrl.Service.ExportUnits(c.UserContext(), ctrl.UnitService.FilterUnits(filter))
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return sendWorkbook(c, "units.xlsx", data)
}

func sendWorkbook(c *fiber.Ctx, filename string, data []byte) error {
	c.Set("Content-Type", ContentTypeXLSX)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(data)
}
