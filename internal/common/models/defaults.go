package models

import (
	"strconv"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

// Default datasets are substituted whenever a collection is absent from the store
// or cannot be decoded. Each call returns a fresh copy.

func DefaultAreas() []Area {
	return []Area{
		{ID: "1", Name: "New Cairo", City: "Cairo", CreatedAt: day(1)},
		{ID: "2", Name: "6th of October", City: "Giza", CreatedAt: day(1)},
		{ID: "3", Name: "Sheikh Zayed", City: "Giza", CreatedAt: day(1)},
		{ID: "4", Name: "New Administrative Capital", City: "Cairo", CreatedAt: day(1)},
		{ID: "5", Name: "North Coast", City: "Marsa Matrouh", CreatedAt: day(1)},
	}
}

func DefaultProjects() []Project {
	return []Project{
		{ID: "1", Name: "Madinaty", Developer: "Talaat Moustafa Group", AreaID: "1", AreaName: "New Cairo", TotalUnits: 12000, Status: ProjectStatusOngoing, CreatedAt: day(1)},
		{ID: "2", Name: "Palm Hills October", Developer: "Palm Hills Developments", AreaID: "2", AreaName: "6th of October", TotalUnits: 3500, Status: ProjectStatusOngoing, CreatedAt: day(1)},
		{ID: "3", Name: "Mountain View iCity", Developer: "Mountain View", AreaID: "1", AreaName: "New Cairo", TotalUnits: 2800, Status: ProjectStatusUpcoming, CreatedAt: day(1)},
		{ID: "4", Name: "Zed Towers", Developer: "Ora Developers", AreaID: "3", AreaName: "Sheikh Zayed", TotalUnits: 1500, Status: ProjectStatusOngoing, CreatedAt: day(1)},
		{ID: "5", Name: "Marassi", Developer: "Emaar", AreaID: "5", AreaName: "North Coast", TotalUnits: 800, Status: ProjectStatusCompleted, CreatedAt: day(1)},
	}
}

func DefaultLeads() []Lead {
	return []Lead{
		{ID: "1", Name: "أحمد محمود", Email: "ahmed.mahmoud@email.com", Phone: "+20 100 123 4567", Status: LeadStatusNew, FollowUp: FollowUpPending, Source: "Facebook", AreaID: "1", AreaName: "New Cairo", ProjectID: "1", ProjectName: "Madinaty", AssignedTo: "sales-1", AssignedToName: "Ahmed Sales", CreatedAt: day(15)},
		{ID: "2", Name: "Sara Hassan", Email: "sara.hassan@email.com", Phone: "+20 112 987 6543", Status: LeadStatusContacted, FollowUp: FollowUpScheduled, Source: "Referral", AreaID: "1", AreaName: "New Cairo", ProjectID: "3", ProjectName: "Mountain View iCity", AssignedTo: "sales-2", AssignedToName: "Sara Sales", CreatedAt: day(14)},
		{ID: "3", Name: "Mohamed Ali", Email: "mali@email.com", Phone: "+20 101 456 7890", Status: LeadStatusQualified, FollowUp: FollowUpCallback, Source: "Property Exhibition", AreaID: "3", AreaName: "Sheikh Zayed", ProjectID: "4", ProjectName: "Zed Towers", AssignedTo: "sales-3", AssignedToName: "Mohamed Hassan", CreatedAt: day(13)},
		{ID: "4", Name: "Fatma Ibrahim", Email: "fatma.i@email.com", Phone: "+20 115 222 3333", Status: LeadStatusNegotiation, FollowUp: FollowUpCompleted, Source: "Website", AreaID: "5", AreaName: "North Coast", ProjectID: "5", ProjectName: "Marassi", AssignedTo: "sales-1", AssignedToName: "Ahmed Sales", CreatedAt: day(12)},
		{ID: "5", Name: "Omar Khaled", Email: "omar@email.com", Phone: "+20 100 555 6666", Status: LeadStatusNew, FollowUp: FollowUpPending, Source: "Facebook", AreaID: "1", AreaName: "New Cairo", CreatedAt: day(11)},
		{ID: "6", Name: "Mona Samir", Email: "mona@email.com", Phone: "+20 101 777 8888", Status: LeadStatusContacted, FollowUp: FollowUpScheduled, Source: "OLX", AreaID: "2", AreaName: "6th of October", ProjectID: "2", ProjectName: "Palm Hills October", CreatedAt: day(10)},
	}
}

func DefaultUnits() []Unit {
	return []Unit{
		{ID: "1", ProjectID: "1", ProjectName: "Madinaty", AreaID: "1", AreaName: "New Cairo", UnitNumber: "B7-205", Type: "3 BR", Size: 185, Price: 4500000, OwnerName: "Khaled Mansour", OwnerPhone: "+20 100 111 2222", Photos: []string{}, Status: UnitStatusAvailable, FinishingStatus: FinishingFullyFinished, PaymentMethod: PaymentCash, CreatedAt: day(12)},
		{ID: "2", ProjectID: "2", ProjectName: "Palm Hills October", AreaID: "2", AreaName: "6th of October", UnitNumber: "V-42", Type: "Villa", Size: 320, Price: 12000000, OwnerName: "Amira El-Sayed", OwnerPhone: "+20 112 333 4444", Photos: []string{}, Status: UnitStatusAvailable, FinishingStatus: FinishingSemiFinished, PaymentMethod: PaymentInstallments, InstallmentPlans: "10% down payment, 7 years installments", CreatedAt: day(11)},
		{ID: "3", ProjectID: "3", ProjectName: "Mountain View iCity", AreaID: "1", AreaName: "New Cairo", UnitNumber: "C3-108", Type: "2 BR", Size: 140, Price: 3200000, OwnerName: "Omar Siddiqui", OwnerPhone: "+20 101 555 6666", Photos: []string{}, Status: UnitStatusReserved, FinishingStatus: FinishingCoreAndShell, PaymentMethod: PaymentInstallments, InstallmentPlans: "5% down payment, 8 years installments", CreatedAt: day(10)},
		{ID: "4", ProjectID: "4", ProjectName: "Zed Towers", AreaID: "3", AreaName: "Sheikh Zayed", UnitNumber: "T1-1802", Type: "Penthouse", Size: 280, Price: 18500000, OwnerName: "Nadia Fouad", OwnerPhone: "+20 115 777 8888", Photos: []string{}, Status: UnitStatusAvailable, FinishingStatus: FinishingFullyFinished, PaymentMethod: PaymentCash, CreatedAt: day(9)},
		{ID: "5", ProjectID: "5", ProjectName: "Marassi", AreaID: "5", AreaName: "North Coast", UnitNumber: "CH-15", Type: "Chalet", Size: 150, Price: 6500000, OwnerName: "Hassan Ahmed", OwnerPhone: "+20 100 999 0000", Photos: []string{}, Status: UnitStatusAvailable, FinishingStatus: FinishingFullyFinished, PaymentMethod: PaymentInstallments, InstallmentPlans: "20% down payment, 6 years installments", CreatedAt: day(8)},
	}
}

func options(labels ...string) []ConfigOption {
	out := make([]ConfigOption, 0, len(labels))
	for i, l := range labels {
		out = append(out, ConfigOption{ID: strconv.Itoa(i + 1), Label: l, IsActive: true})
	}
	return out
}

func DefaultLeadSources() []ConfigOption {
	return options("Facebook", "Instagram", "Website", "Referral", "Property Exhibition", "Walk-in", "OLX", "TikTok", "Google Ads")
}

func DefaultUnitTypes() []ConfigOption {
	return options("Studio", "1 BR", "2 BR", "3 BR", "4 BR", "Penthouse", "Duplex", "Townhouse", "Villa", "Twin House")
}

func DefaultSalesReps() []User {
	return []User{
		{ID: "sales-1", Name: "Ahmed Sales", Email: "ahmed@isearch.com", Phone: "+20 100 111 1111", Role: RoleSales, IsActive: true, CreatedAt: day(2)},
		{ID: "sales-2", Name: "Sara Sales", Email: "sara@isearch.com", Phone: "+20 100 222 2222", Role: RoleSales, IsActive: true, CreatedAt: day(3)},
		{ID: "sales-3", Name: "Mohamed Hassan", Email: "mohamed@isearch.com", Phone: "+20 100 333 3333", Role: RoleSales, IsActive: true, CreatedAt: day(4)},
	}
}

// DefaultRoster is the fixed login list. Passwords are plain text placeholders.
func DefaultRoster() []Credential {
	return []Credential{
		{User: User{ID: "admin-1", Name: "Admin User", Email: "admin@isearch.com", Phone: "+20 100 000 0000", Role: RoleAdmin, IsActive: true, CreatedAt: day(1)}, Password: "admin123"},
		{User: User{ID: "sales-1", Name: "Ahmed Sales", Email: "ahmed@isearch.com", Phone: "+20 100 111 1111", Role: RoleSales, IsActive: true, CreatedAt: day(2)}, Password: "sales123"},
		{User: User{ID: "sales-2", Name: "Sara Sales", Email: "sara@isearch.com", Phone: "+20 100 222 2222", Role: RoleSales, IsActive: true, CreatedAt: day(3)}, Password: "sales123"},
	}
}
