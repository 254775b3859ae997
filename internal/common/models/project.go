package models

import "time"

// Project is a development inside an area. AreaName is copied from the area when
// the project is created and is not kept in sync afterwards.
type Project struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Developer        string        `json:"developer"`
	AreaID           string        `json:"areaId"`
	AreaName         string        `json:"areaName"`
	TotalUnits       int           `json:"totalUnits"`
	Status           ProjectStatus `json:"status"`
	DeliveryDate     string        `json:"deliveryDate,omitempty"`
	InstallmentPlans string        `json:"installmentPlans,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}

type ProjectInput struct {
	Name             string        `json:"name" validate:"required"`
	Developer        string        `json:"developer" validate:"required"`
	AreaID           string        `json:"areaId" validate:"required"`
	TotalUnits       int           `json:"totalUnits"`
	Status           ProjectStatus `json:"status" validate:"omitempty,oneof=upcoming ongoing completed"`
	DeliveryDate     string        `json:"deliveryDate,omitempty"`
	InstallmentPlans string        `json:"installmentPlans,omitempty"`
}

type ProjectPatch struct {
	Name             *string        `json:"name,omitempty"`
	Developer        *string        `json:"developer,omitempty"`
	AreaID           *string        `json:"areaId,omitempty"`
	AreaName         *string        `json:"areaName,omitempty"`
	TotalUnits       *int           `json:"totalUnits,omitempty"`
	Status           *ProjectStatus `json:"status,omitempty"`
	DeliveryDate     *string        `json:"deliveryDate,omitempty"`
	InstallmentPlans *string        `json:"installmentPlans,omitempty"`
}

// Apply merges the set fields into p. Reference changes do not refresh AreaName
// unless the patch carries it.
func (pt ProjectPatch) Apply(p *Project) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Developer != nil {
		p.Developer = *pt.Developer
	}
	if pt.AreaID != nil {
		p.AreaID = *pt.AreaID
	}
	if pt.AreaName != nil {
		p.AreaName = *pt.AreaName
	}
	if pt.TotalUnits != nil {
		p.TotalUnits = *pt.TotalUnits
	}
	if pt.Status != nil {
		p.Status = *pt.Status
	}
	if pt.DeliveryDate != nil {
		p.DeliveryDate = *pt.DeliveryDate
	}
	if pt.InstallmentPlans != nil {
		p.InstallmentPlans = *pt.InstallmentPlans
	}
}
