package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleSales Role = "sales"
)

type ProjectStatus string

const (
	ProjectStatusUpcoming  ProjectStatus = "upcoming"
	ProjectStatusOngoing   ProjectStatus = "ongoing"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "available"
	UnitStatusReserved  UnitStatus = "reserved"
	UnitStatusSold      UnitStatus = "sold"
)

type FinishingStatus string

const (
	FinishingCoreAndShell  FinishingStatus = "core-and-shell"
	FinishingSemiFinished  FinishingStatus = "semi-finished"
	FinishingFullyFinished FinishingStatus = "fully-finished"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentInstallments PaymentMethod = "installments"
)

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusClosed      LeadStatus = "closed"
)

type FollowUp string

const (
	FollowUpPending   FollowUp = "pending"
	FollowUpScheduled FollowUp = "scheduled"
	FollowUpCompleted FollowUp = "completed"
	FollowUpNoAnswer  FollowUp = "no-answer"
	FollowUpCallback  FollowUp = "callback"
)

// Collection names double as the storage keys of each persisted list.
const (
	CollectionLeads       = "crm_leads"
	CollectionProjects    = "crm_projects"
	CollectionAreas       = "crm_areas"
	CollectionUnits       = "crm_units"
	CollectionLeadSources = "leadSources"
	CollectionUnitTypes   = "unitTypes"
	CollectionSalesReps   = "salesReps"
	KeyCurrentUser        = "currentUser"
	KeyLanguage           = "crm_lang"
)

// Clock returns the current time. Services take one so tests can pin timestamps.
type Clock func() time.Time

// IDGenerator returns a fresh record identifier.
type IDGenerator func() string
