package unit

import (
	"fmt"

	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

type UnitController struct {
	Service UnitService
}

func NewUnitController(service UnitService) *UnitController {
	return &UnitController{
		Service: service,
	}
}

// ListUnits godoc
// @Summary      List units
// @Description  List units, optionally filtered by area, payment method and size range
// @Tags         units
// @Produce      json
// @Param        areaId        query string false "Area ID or 'all'"
// @Param        paymentMethod query string false "cash, installments or 'all'"
// @Param        minSize       query number false "Minimum size in m²"
// @Param        maxSize       query number false "Maximum size in m²"
// @Success      200  {array}   models.Unit
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/units [get]
func (ctrl *UnitController) ListUnits(c *fiber.Ctx) error {
	var filter UnitFilter
	if err := c.QueryParser(&filter); err != nil {
		return api.Error(c, fiber.StatusBadRequest, "Invalid filter")
	}
	return c.JSON(ctrl.Service.FilterUnits(filter))
}

// CreateUnit godoc
// @Summary      Add a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        unit body models.UnitInput true "Unit"
// @Success      201  {object}  api.Notification
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/units [post]
func (ctrl *UnitController) CreateUnit(c *fiber.Ctx) error {
	var input models.UnitInput
	if ok, err := api.ParseAndValidate(c, &input); !ok {
		return err
	}

	unit, err := ctrl.Service.AddUnit(c.UserContext(), input)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return api.Notify(c, fiber.StatusCreated, "Unit Added",
		fmt.Sprintf("Unit %s has been added.", unit.UnitNumber), unit)
}

// UpdateUnit godoc
// @Summary      Update a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        id   path string true "Unit ID"
// @Param        unit body models.UnitPatch true "Fields to change"
// @Success      200  {object}  api.Notification
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/units/{id} [patch]
func (ctrl *UnitController) UpdateUnit(c *fiber.Ctx) error {
	var patch models.UnitPatch
	if err := c.BodyParser(&patch); err != nil {
		return api.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	unit, found, err := ctrl.Service.UpdateUnit(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return api.Error(c, fiber.StatusNotFound, "Unit not found")
	}
	return api.Notify(c, fiber.StatusOK, "Unit Updated", "", unit)
}

// DeleteUnit godoc
// @Summary      Delete a unit
// @Tags         units
// @Param        id   path string true "Unit ID"
// @Success      200  {object}  api.Notification
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/units/{id} [delete]
func (ctrl *UnitController) DeleteUnit(c *fiber.Ctx) error {
	removed, err := ctrl.Service.DeleteUnit(c.UserContext(), c.Params("id"))
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !removed {
		return api.Error(c, fiber.StatusNotFound, "Unit not found")
	}
	return api.Notify(c, fiber.StatusOK, "Unit Deleted", "", nil)
}
