package models

// ConfigOption is a lead source or unit type the admin can manage.
type ConfigOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	IsActive bool   `json:"isActive"`
}
