package models

import "time"

type Area struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
}

type AreaInput struct {
	Name string `json:"name" validate:"required"`
	City string `json:"city" validate:"required"`
}

type AreaPatch struct {
	Name *string `json:"name,omitempty"`
	City *string `json:"city,omitempty"`
}

func (p AreaPatch) Apply(a *Area) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.City != nil {
		a.City = *p.City
	}
}
