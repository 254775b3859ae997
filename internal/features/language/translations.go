package language

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

var translations = map[Language]map[string]string{
	English: {
		"nav.dashboard":       "Dashboard",
		"nav.leads":           "Leads",
		"nav.projects":        "Projects",
		"nav.units":           "Units",
		"nav.areas":           "Areas",
		"nav.settings":        "Settings",
		"leads.title":         "Leads",
		"leads.add":           "Add Lead",
		"units.title":         "Units",
		"units.add":           "Add Unit",
		"units.filters":       "Filters",
		"units.area":          "Area",
		"units.paymentMethod": "Payment Method",
		"units.minSize":       "Min Size (m²)",
		"units.maxSize":       "Max Size (m²)",
		"common.search":       "Search",
		"common.reset":        "Reset",
		"common.save":         "Save",
		"common.cancel":       "Cancel",
	},
	Arabic: {
		"nav.dashboard":       "لوحة القيادة",
		"nav.leads":           "العملاء المحتملون",
		"nav.projects":        "المشاريع",
		"nav.units":           "الوحدات",
		"nav.areas":           "المناطق",
		"nav.settings":        "الإعدادات",
		"leads.title":         "العملاء المحتملون",
		"leads.add":           "إضافة عميل",
		"units.title":         "الوحدات",
		"units.add":           "إضافة وحدة",
		"units.filters":       "الفلاتر",
		"units.area":          "المنطقة",
		"units.paymentMethod": "طريقة الدفع",
		"units.minSize":       "أقل مساحة (م²)",
		"units.maxSize":       "أكبر مساحة (م²)",
		"common.search":       "بحث",
		"common.reset":        "إعادة ضبط",
		"common.save":         "حفظ",
		"common.cancel":       "إلغاء",
	},
}

func (l Language) Valid() bool {
	_, ok := translations[l]
	return ok
}
