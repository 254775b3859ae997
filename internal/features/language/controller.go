package language

import (
	"errors"

	"go-estate-crm/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type LanguageController struct {
	Service LanguageService
}

func NewLanguageController(service LanguageService) *LanguageController {
	return &LanguageController{
		Service: service,
	}
}

type LanguageRequest struct {
	Language Language `json:"language" validate:"required,oneof=en ar"`
}

type LanguageResponse struct {
	Language Language `json:"language"`
	RTL      bool     `json:"rtl"`
}

func (ctrl *LanguageController) current() LanguageResponse {
	return LanguageResponse{Language: ctrl.Service.Current(), RTL: ctrl.Service.IsRTL()}
}

// GetLanguage godoc
// @Summary      Current UI language
// @Tags         language
// @Produce      json
// @Success      200  {object}  LanguageResponse
// @Router       /api/language [get]
func (ctrl *LanguageController) GetLanguage(c *fiber.Ctx) error {
	return c.JSON(ctrl.current())
}

// SetLanguage godoc
// @Summary      Switch UI language
// @Tags         language
// @Accept       json
// @Produce      json
// @Param        input body LanguageRequest true "Language"
// @Success      200  {object}  LanguageResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/language [put]
func (ctrl *LanguageController) SetLanguage(c *fiber.Ctx) error {
	var req LanguageRequest
	if ok, err := api.ParseAndValidate(c, &req); !ok {
		return err
	}
	if err := ctrl.Service.SetLanguage(c.UserContext(), req.Language); err != nil {
		if errors.Is(err, ErrUnsupportedLanguage) {
			return api.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return api.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(ctrl.current())
}

// Translate godoc
// @Summary      Translate a UI key
// @Tags         language
// @Produce      json
// @Param        key  path string true "Translation key"
// @Success      200  {object}  map[string]string
// @Router       /api/language/translate/{key} [get]
func (ctrl *LanguageController) Translate(c *fiber.Ctx) error {
	key := c.Params("key")
	return c.JSON(fiber.Map{"key": key, "value": ctrl.Service.Translate(key)})
}
