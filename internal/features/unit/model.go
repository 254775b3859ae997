package unit

import "go-estate-crm/internal/common/models"

// FilterAll is accepted in place of an empty value for AreaID and PaymentMethod.
const FilterAll = "all"

// UnitFilter narrows the unit list. Zero values match every unit.
type UnitFilter struct {
	AreaID        string  `query:"areaId"`
	PaymentMethod string  `query:"paymentMethod"`
	MinSize       float64 `query:"minSize"`
	MaxSize       float64 `query:"maxSize"`
}

func (f UnitFilter) Matches(u models.Unit) bool {
	if f.AreaID != "" && f.AreaID != FilterAll && u.AreaID != f.AreaID {
		return false
	}
	if f.PaymentMethod != "" && f.PaymentMethod != FilterAll && string(u.PaymentMethod) != f.PaymentMethod {
		return false
	}
	if f.MinSize > 0 && u.Size < f.MinSize {
		return false
	}
	if f.MaxSize > 0 && u.Size > f.MaxSize {
		return false
	}
	return true
}
