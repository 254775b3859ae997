package models

import "time"

// Lead is a prospective buyer. The *Name fields are snapshots of the referenced
// area, project and sales rep taken when the lead was added.
type Lead struct {
	ID                     string        `json:"id"`
	Name                   string        `json:"name"`
	Email                  string        `json:"email"`
	Phone                  string        `json:"phone"`
	Status                 LeadStatus    `json:"status"`
	FollowUp               FollowUp      `json:"followUp"`
	Source                 string        `json:"source"`
	AreaID                 string        `json:"areaId,omitempty"`
	AreaName               string        `json:"areaName,omitempty"`
	ProjectID              string        `json:"projectId,omitempty"`
	ProjectName            string        `json:"projectName,omitempty"`
	AssignedTo             string        `json:"assignedTo,omitempty"`
	AssignedToName         string        `json:"assignedToName,omitempty"`
	PreferredPaymentMethod PaymentMethod `json:"preferredPaymentMethod,omitempty"`
	Budget                 *float64      `json:"budget,omitempty"`
	CreatedAt              time.Time     `json:"createdAt"`
}

type LeadInput struct {
	Name                   string        `json:"name" validate:"required"`
	Email                  string        `json:"email"`
	Phone                  string        `json:"phone" validate:"required"`
	Status                 LeadStatus    `json:"status" validate:"omitempty,oneof=new contacted qualified negotiation closed"`
	FollowUp               FollowUp      `json:"followUp" validate:"omitempty,oneof=pending scheduled completed no-answer callback"`
	Source                 string        `json:"source"`
	AreaID                 string        `json:"areaId,omitempty"`
	AreaName               string        `json:"areaName,omitempty"`
	ProjectID              string        `json:"projectId,omitempty"`
	ProjectName            string        `json:"projectName,omitempty"`
	AssignedTo             string        `json:"assignedTo,omitempty"`
	AssignedToName         string        `json:"assignedToName,omitempty"`
	PreferredPaymentMethod PaymentMethod `json:"preferredPaymentMethod,omitempty" validate:"omitempty,oneof=cash installments"`
	Budget                 *float64      `json:"budget,omitempty"`
}

type LeadPatch struct {
	Name                   *string        `json:"name,omitempty"`
	Email                  *string        `json:"email,omitempty"`
	Phone                  *string        `json:"phone,omitempty"`
	Status                 *LeadStatus    `json:"status,omitempty"`
	FollowUp               *FollowUp      `json:"followUp,omitempty"`
	Source                 *string        `json:"source,omitempty"`
	AreaID                 *string        `json:"areaId,omitempty"`
	AreaName               *string        `json:"areaName,omitempty"`
	ProjectID              *string        `json:"projectId,omitempty"`
	ProjectName            *string        `json:"projectName,omitempty"`
	AssignedTo             *string        `json:"assignedTo,omitempty"`
	AssignedToName         *string        `json:"assignedToName,omitempty"`
	PreferredPaymentMethod *PaymentMethod `json:"preferredPaymentMethod,omitempty"`
	Budget                 *float64       `json:"budget,omitempty"`
}

// Apply merges the set fields into l. Changing AreaID, ProjectID or AssignedTo
// leaves the matching name untouched unless the patch sets it too.
func (pt LeadPatch) Apply(l *Lead) {
	if pt.Name != nil {
		l.Name = *pt.Name
	}
	if pt.Email != nil {
		l.Email = *pt.Email
	}
	if pt.Phone != nil {
		l.Phone = *pt.Phone
	}
	if pt.Status != nil {
		l.Status = *pt.Status
	}
	if pt.FollowUp != nil {
		l.FollowUp = *pt.FollowUp
	}
	if pt.Source != nil {
		l.Source = *pt.Source
	}
	if pt.AreaID != nil {
		l.AreaID = *pt.AreaID
	}
	if pt.AreaName != nil {
		l.AreaName = *pt.AreaName
	}
	if pt.ProjectID != nil {
		l.ProjectID = *pt.ProjectID
	}
	if pt.ProjectName != nil {
		l.ProjectName = *pt.ProjectName
	}
	if pt.AssignedTo != nil {
		l.AssignedTo = *pt.AssignedTo
	}
	if pt.AssignedToName != nil {
		l.AssignedToName = *pt.AssignedToName
	}
	if pt.PreferredPaymentMethod != nil {
		l.PreferredPaymentMethod = *pt.PreferredPaymentMethod
	}
	if pt.Budget != nil {
		b := *pt.Budget
		l.Budget = &b
	}
}
