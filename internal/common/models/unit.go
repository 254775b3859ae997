package models

import "time"

// Unit is a sellable property. ProjectName, AreaID and AreaName are copied from
// the referenced project at creation time.
type Unit struct {
	ID               string          `json:"id"`
	ProjectID        string          `json:"projectId"`
	ProjectName      string          `json:"projectName"`
	AreaID           string          `json:"areaId"`
	AreaName         string          `json:"areaName"`
	UnitNumber       string          `json:"unitNumber"`
	Type             string          `json:"type"`
	Size             float64         `json:"size"`
	Price            float64         `json:"price"`
	OwnerName        string          `json:"ownerName"`
	OwnerPhone       string          `json:"ownerPhone"`
	Photos           []string        `json:"photos"`
	Status           UnitStatus      `json:"status"`
	FinishingStatus  FinishingStatus `json:"finishingStatus"`
	DeliveryDate     string          `json:"deliveryDate,omitempty"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod"`
	InstallmentPlans string          `json:"installmentPlans,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type UnitInput struct {
	ProjectID        string          `json:"projectId" validate:"required"`
	UnitNumber       string          `json:"unitNumber" validate:"required"`
	Type             string          `json:"type"`
	Size             float64         `json:"size" validate:"required"`
	Price            float64         `json:"price" validate:"required"`
	OwnerName        string          `json:"ownerName" validate:"required"`
	OwnerPhone       string          `json:"ownerPhone" validate:"required"`
	Photos           []string        `json:"photos"`
	Status           UnitStatus      `json:"status" validate:"omitempty,oneof=available reserved sold"`
	FinishingStatus  FinishingStatus `json:"finishingStatus" validate:"omitempty,oneof=core-and-shell semi-finished fully-finished"`
	DeliveryDate     string          `json:"deliveryDate,omitempty"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod" validate:"omitempty,oneof=cash installments"`
	InstallmentPlans string          `json:"installmentPlans,omitempty"`
}

type UnitPatch struct {
	ProjectID        *string          `json:"projectId,omitempty"`
	ProjectName      *string          `json:"projectName,omitempty"`
	AreaID           *string          `json:"areaId,omitempty"`
	AreaName         *string          `json:"areaName,omitempty"`
	UnitNumber       *string          `json:"unitNumber,omitempty"`
	Type             *string          `json:"type,omitempty"`
	Size             *float64         `json:"size,omitempty"`
	Price            *float64         `json:"price,omitempty"`
	OwnerName        *string          `json:"ownerName,omitempty"`
	OwnerPhone       *string          `json:"ownerPhone,omitempty"`
	Photos           []string         `json:"photos,omitempty"`
	Status           *UnitStatus      `json:"status,omitempty"`
	FinishingStatus  *FinishingStatus `json:"finishingStatus,omitempty"`
	DeliveryDate     *string          `json:"deliveryDate,omitempty"`
	PaymentMethod    *PaymentMethod   `json:"paymentMethod,omitempty"`
	InstallmentPlans *string          `json:"installmentPlans,omitempty"`
}

func (pt UnitPatch) Apply(u *Unit) {
	if pt.ProjectID != nil {
		u.ProjectID = *pt.ProjectID
	}
	if pt.ProjectName != nil {
		u.ProjectName = *pt.ProjectName
	}
	if pt.AreaID != nil {
		u.AreaID = *pt.AreaID
	}
	if pt.AreaName != nil {
		u.AreaName = *pt.AreaName
	}
	if pt.UnitNumber != nil {
		u.UnitNumber = *pt.UnitNumber
	}
	if pt.Type != nil {
		u.Type = *pt.Type
	}
	if pt.Size != nil {
		u.Size = *pt.Size
	}
	if pt.Price != nil {
		u.Price = *pt.Price
	}
	if pt.OwnerName != nil {
		u.OwnerName = *pt.OwnerName
	}
	if pt.OwnerPhone != nil {
		u.OwnerPhone = *pt.OwnerPhone
	}
	if pt.Photos != nil {
		u.Photos = append([]string(nil), pt.Photos...)
	}
	if pt.Status != nil {
		u.Status = *pt.Status
	}
	if pt.FinishingStatus != nil {
		u.FinishingStatus = *pt.FinishingStatus
	}
	if pt.DeliveryDate != nil {
		u.DeliveryDate = *pt.DeliveryDate
	}
	if pt.PaymentMethod != nil {
		u.PaymentMethod = *pt.PaymentMethod
	}
	if pt.InstallmentPlans != nil {
		u.InstallmentPlans = *pt.InstallmentPlans
	}
}
