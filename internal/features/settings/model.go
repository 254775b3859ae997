package settings

import (
	"errors"

	"go-estate-crm/internal/common/models"
)

var (
	ErrBlankLabel = errors.New("label must not be blank")
	ErrBlankName  = errors.New("sales rep name must not be blank")
)

type OptionInput struct {
	Label string `json:"label" validate:"required"`
}

type SalesRepInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// ActiveOptions is what the lead and unit forms offer.
type ActiveOptions struct {
	LeadSources []models.ConfigOption `json:"leadSources"`
	UnitTypes   []models.ConfigOption `json:"unitTypes"`
	SalesReps   []models.User         `json:"salesReps"`
}
