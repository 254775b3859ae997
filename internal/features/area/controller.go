package area

import (
	"fmt"

	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

type AreaController struct {
	Service AreaService
}

func NewAreaController(service AreaService) *AreaController {
	return &AreaController{
		Service: service,
	}
}

// ListAreas godoc
// @Summary      List areas
// @Description  Get all areas, newest first
// @Tags         areas
// @Produce      json
// @Success      200  {array}   models.Area
// @Router       /api/areas [get]
func (ctrl *AreaController) ListAreas(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.ListAreas())
}

// CreateArea godoc
// @Summary      Add an area
// @Tags         areas
// @Accept       json
// @Produce      json
// @Param        area body models.AreaInput true "Area"
// @Success      201  {object}  api.Notification
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/areas [post]
func (ctrl *AreaController) CreateArea(c *fiber.Ctx) error {
	var input models.AreaInput
	if ok, err := api.ParseAndValidate(c, &input); !ok {
		return err
	}

	area, err := ctrl.Service.AddArea(c.UserContext(), input)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return api.Notify(c, fiber.StatusCreated, "Area Added",
		fmt.Sprintf("%s has been added to your areas.", area.Name), area)
}

// UpdateArea godoc
// @Summary      Update an area
// @Tags         areas
// @Accept       json
// @Produce      json
// @Param        id   path string true "Area ID"
// @Param        area body models.AreaPatch true "Fields to change"
// @Success      200  {object}  api.Notification
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/areas/{id} [patch]
func (ctrl *AreaController) UpdateArea(c *fiber.Ctx) error {
	var patch models.AreaPatch
	if err := c.BodyParser(&patch); err != nil {
		return api.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	area, found, err := ctrl.Service.UpdateArea(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return api.Error(c, fiber.StatusNotFound, "Area not found")
	}
	return api.Notify(c, fiber.StatusOK, "Area Updated", "", area)
}

// DeleteArea godoc
// @Summary      Delete an area
// @Tags         areas
// @Param        id   path string true "Area ID"
// @Success      200  {object}  api.Notification
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/areas/{id} [delete]
func (ctrl *AreaController) DeleteArea(c *fiber.Ctx) error {
	removed, err := ctrl.Service.DeleteArea(c.UserContext(), c.Params("id"))
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !removed {
		return api.Error(c, fiber.StatusNotFound, "Area not found")
	}
	return api.Notify(c, fiber.StatusOK, "Area Deleted", "", nil)
}
