package lead

import (
	"fmt"

	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/features/auth"
	"go-estate-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LeadController struct {
	Service LeadService
}

func NewLeadController(service LeadService) *LeadController {
	return &LeadController{
		Service: service,
	}
}

// visible returns the lead with id when the session user may see it.
func (ctrl *LeadController) visible(c *fiber.Ctx, id string) (models.Lead, bool) {
	lead, ok := ctrl.Service.GetLead(id)
	if !ok {
		return models.Lead{}, false
	}
	if len(auth.FilterVisible(middleware.UserFrom(c), []models.Lead{lead})) == 0 {
		return models.Lead{}, false
	}
	return lead, true
}

// ListLeads godoc
// @Summary      List leads
// @Description  Admins see every lead, sales users their own and unassigned ones
// @Tags         leads
// @Produce      json
// @Success      200  {array}   models.Lead
// @Router       /api/leads [get]
func (ctrl *LeadController) ListLeads(c *fiber.Ctx) error {
	return c.JSON(auth.FilterVisible(middleware.UserFrom(c), ctrl.Service.ListLeads()))
}

// GetLead godoc
// @Summary      Get a lead
// @Tags         leads
// @Produce      json
// @Param        id   path string true "Lead ID"
// @Success      200  {object}  models.Lead
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/leads/{id} [get]
func (ctrl *LeadController) GetLead(c *fiber.Ctx) error {
	lead, ok := ctrl.visible(c, c.Params("id"))
	if !ok {
		return api.Error(c, fiber.StatusNotFound, "Lead not found")
	}
	return c.JSON(lead)
}

// CreateLead godoc
// @Summary      Add a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead body models.LeadInput true "Lead"
// @Success      201  {object}  api.Notification
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/leads [post]
func (ctrl *LeadController) CreateLead(c *fiber.Ctx) error {
	var input models.LeadInput
	if ok, err := api.ParseAndValidate(c, &input); !ok {
		return err
	}

	lead, err := ctrl.Service.AddLead(c.UserContext(), input)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return api.Notify(c, fiber.StatusCreated, "Lead Added",
		fmt.Sprintf("%s has been added to your leads.", lead.Name), lead)
}

// UpdateLead godoc
// @Summary      Update a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id   path string true "Lead ID"
// @Param        lead body models.LeadPatch true "Fields to change"
// @Success      200  {object}  api.Notification
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/leads/{id} [patch]
func (ctrl *LeadController) UpdateLead(c *fiber.Ctx) error {
	var patch models.LeadPatch
	if err := c.BodyParser(&patch); err != nil {
		return api.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	lead, found, err := ctrl.Service.UpdateLead(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return api.Error(c, fiber.StatusNotFound, "Lead not found")
	}
	return api.Notify(c, fiber.StatusOK, "Lead Updated", "", lead)
}

// DeleteLead godoc
// @Summary      Delete a lead
// @Tags         leads
// @Param        id   path string true "Lead ID"
// @Success      200  {object}  api.Notification
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/leads/{id} [delete]
func (ctrl *LeadController) DeleteLead(c *fiber.Ctx) error {
	removed, err := ctrl.Service.DeleteLead(c.UserContext(), c.Params("id"))
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !removed {
		return api.Error(c, fiber.StatusNotFound, "Lead not found")
	}
	return api.Notify(c, fiber.StatusOK, "Lead Deleted", "", nil)
}

// WhatsApp godoc
// @Summary      WhatsApp deep link
// @Description  Returns the wa.me link with a prefilled greeting and logs the interaction
// @Tags         leads
// @Produce      json
// @Param        id   path string true "Lead ID"
// @Success      200  {object}  api.Notification
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/leads/{id}/whatsapp [get]
func (ctrl *LeadController) WhatsApp(c *fiber.Ctx) error {
	lead, ok := ctrl.visible(c, c.Params("id"))
	if !ok {
		return api.Error(c, fiber.StatusNotFound, "Lead not found")
	}
	return api.Notify(c, fiber.StatusOK, "WhatsApp Interaction Logged",
		fmt.Sprintf("Interaction with %s has been recorded.", lead.Name),
		fiber.Map{"url": ctrl.Service.WhatsAppLink(lead)})
}
