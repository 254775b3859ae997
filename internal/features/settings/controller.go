package settings

import (
	"errors"

	"go-estate-crm/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type SettingsController struct {
	Service SettingsService
}

func NewSettingsController(service SettingsService) *SettingsController {
	return &SettingsController{
		Service: service,
	}
}

// GetOptions godoc
// @Summary Get active form options
// @Description Active lead sources, unit types and sales reps for the lead and unit forms
// @Tags settings
// @Produce json
// @Success 200 {object} ActiveOptions
// @Router /api/options [get]
func (ctrl *SettingsController) GetOptions(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.ActiveOptions())
}

// GetLeadSources godoc
// @Summary List lead sources
// @Tags settings
// @Produce json
// @Success 200 {array} models.ConfigOption
// @Router /api/settings/lead-sources [get]
func (ctrl *SettingsController) GetLeadSources(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.LeadSources())
}

// AddLeadSource godoc
// @Summary Add a lead source
// @Tags settings
// @Accept json
// @Produce json
// @Param option body OptionInput true "Lead source"
// @Success 201 {object} api.Notification
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/settings/lead-sources [post]
func (ctrl *SettingsController) AddLeadSource(c *fiber.Ctx) error {
	var input OptionInput
	if err := c.BodyParser(&input); err != nil {
		return api.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	option, err := ctrl.Service.AddLeadSource(c.UserContext(), input.Label)
	if err != nil {
		return ctrl.fail(c, err)
	}
	return api.Notify(c, fiber.StatusCreated, "Lead source added", "", option)
}

// RemoveLeadSource godoc
// @Summary Remove a lead source
// @Tags settings
// @Param id path string true "Lead source ID"
// @Success 200 {object} api.Notification
// @Failure 404 {object} map[string]interface{}
// @Router /api/settings/lead-sources/{id} [delete]
func (ctrl *SettingsController) RemoveLeadSource(c *fiber.Ctx) error {
	removed, err := ctrl.Service.RemoveLeadSource(c.UserContext(), c.Params("id"))
	if err != nil {
		return ctrl.fail(c, err)
	}
	if !removed {
		return api.Error(c, fiber.StatusNotFound, "Lead source not found")
	}
	return api.Notify(c, fiber.StatusOK, "Lead source removed", "", nil)
}

// GetUnitTypes godoc
// @Summary List unit types
// @Tags settings
// @Produce json
// @Success 200 {array} models.ConfigOption
// @Router /api/settings/unit-types [get]
func (ctrl *SettingsController) GetUnitTypes(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.UnitTypes())
}

// AddUnitType godoc
// @Summary Add a unit type
// @Tags settings
// @Accept json
// @Produce json
// @Param option body OptionInput true "Unit type"
// @Success 201 {object} api.Notification
// @Failure 400 {object} map[string]interface{}
// @Router /api/settings/unit-types [post]
func (ctrl *SettingsController) AddUnitType(c *fiber.Ctx) error {
	var input OptionInput
	if err := c.BodyParser(&input); err != nil {
		return api.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	option, err := ctrl.Service.AddUnitType(c.UserContext(), input.Label)
	if err != nil {
		return ctrl.fail(c, err)
	}
	return api.Notify(c, fiber.StatusCreated, "Unit type added", "", option)
}

// RemoveUnitType godoc
// @Summary Remove a unit type
// @Tags settings
// @Param id path string true "Unit type ID"
// @Success 200 {object} api.Notification
// @Failure 404 {object} map[string]interface{}
// @Router /api/settings/unit-types/{id} [delete]
func (ctrl *SettingsController) RemoveUnitType(c *fiber.Ctx) error {
	removed, err := ctrl.Service.RemoveUnitType(c.UserContext(), c.Params("id"))
	if err != nil {
		return ctrl.fail(c, err)
	}
	if !removed {
		return api.Error(c, fiber.StatusNotFound, "Unit type not found")
	}
	return api.Notify(c, fiber.StatusOK, "Unit type removed", "", nil)
}

// GetSalesReps godoc
// @Summary List sales reps
// @Tags settings
// @Produce json
// @Success 200 {array} models.User
// @Router /api/settings/sales-reps [get]
func (ctrl *SettingsController) GetSalesReps(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.SalesReps())
}

// AddSalesRep godoc
// @Summary Add a sales rep
// @Tags settings
// @Accept json
// @Produce json
// @Param rep body SalesRepInput true "Sales rep"
// @Success 201 {object} api.Notification
// @Failure 400 {object} map[string]interface{}
// @Router /api/settings/sales-reps [post]
func (ctrl *SettingsController) AddSalesRep(c *fiber.Ctx) error {
	var input SalesRepInput
	if ok, err := api.ParseAndValidate(c, &input); !ok {
		return err
	}

	rep, err := ctrl.Service.AddSalesRep(c.UserContext(), input)
	if err != nil {
		return ctrl.fail(c, err)
	}
	return api.Notify(c, fiber.StatusCreated, "Sales rep added", "", rep)
}

// RemoveSalesRep godoc
// @Summary Remove a sales rep
// @Tags settings
// @Param id path string true "Sales rep ID"
// @Success 200 {object} api.Notification
// @Failure 404 {object} map[string]interface{}
// @Router /api/settings/sales-reps/{id} [delete]
func (ctrl *SettingsController) RemoveSalesRep(c *fiber.Ctx) error {
	removed, err := ctrl.Service.RemoveSalesRep(c.UserContext(), c.Params("id"))
	if err != nil {
		return ctrl.fail(c, err)
	}
	if !removed {
		return api.Error(c, fiber.StatusNotFound, "Sales rep not found")
	}
	return api.Notify(c, fiber.StatusOK, "Sales rep removed", "", nil)
}

// ToggleSalesRep godoc
// @Summary Activate or deactivate a sales rep
// @Tags settings
// @Param id path string true "Sales rep ID"
// @Success 200 {object} api.Notification
// @Failure 404 {object} map[string]interface{}
// @Router /api/settings/sales-reps/{id}/toggle [post]
func (ctrl *SettingsController) ToggleSalesRep(c *fiber.Ctx) error {
	rep, found, err := ctrl.Service.ToggleSalesRepStatus(c.UserContext(), c.Params("id"))
	if err != nil {
		return ctrl.fail(c, err)
	}
	if !found {
		return api.Error(c, fiber.StatusNotFound, "Sales rep not found")
	}
	return api.Notify(c, fiber.StatusOK, "Sales rep updated", "", rep)
}

func (ctrl *SettingsController) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrBlankLabel) || errors.Is(err, ErrBlankName) {
		return api.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return api.Error(c, fiber.StatusInternalServerError, err.Error())
}
