package project

import (
	"fmt"

	"go-estate-crm/internal/common/api"
	"go-estate-crm/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

type ProjectController struct {
	Service ProjectService
}

func NewProjectController(service ProjectService) *ProjectController {
	return &ProjectController{
		Service: service,
	}
}

// ListProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Router       /api/projects [get]
func (ctrl *ProjectController) ListProjects(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.ListProjects())
}

// ListAreaProjects godoc
// @Summary      List the projects of an area
// @Tags         projects
// @Produce      json
// @Param        id   path string true "Area ID"
// @Success      200  {array}   models.Project
// @Router       /api/areas/{id}/projects [get]
func (ctrl *ProjectController) ListAreaProjects(c *fiber.Ctx) error {
	return c.JSON(ctrl.Service.ProjectsByArea(c.Params("id")))
}

// CreateProject godoc
// @Summary      Add a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project body models.ProjectInput true "Project"
// @Success      201  {object}  api.Notification
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/projects [post]
func (ctrl *ProjectController) CreateProject(c *fiber.Ctx) error {
	var input models.ProjectInput
	if ok, err := api.ParseAndValidate(c, &input); !ok {
		return err
	}

	project, err := ctrl.Service.AddProject(c.UserContext(), input)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return api.Notify(c, fiber.StatusCreated, "Project Added",
		fmt.Sprintf("%s has been added to your projects.", project.Name), project)
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id      path string true "Project ID"
// @Param        project body models.ProjectPatch true "Fields to change"
// @Success      200  {object}  api.Notification
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/projects/{id} [patch]
func (ctrl *ProjectController) UpdateProject(c *fiber.Ctx) error {
	var patch models.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return api.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	project, found, err := ctrl.Service.UpdateProject(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return api.Error(c, fiber.StatusNotFound, "Project not found")
	}
	return api.Notify(c, fiber.StatusOK, "Project Updated", "", project)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Param        id   path string true "Project ID"
// @Success      200  {object}  api.Notification
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/projects/{id} [delete]
func (ctrl *ProjectController) DeleteProject(c *fiber.Ctx) error {
	removed, err := ctrl.Service.DeleteProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !removed {
		return api.Error(c, fiber.StatusNotFound, "Project not found")
	}
	return api.Notify(c, fiber.StatusOK, "Project Deleted", "", nil)
}
