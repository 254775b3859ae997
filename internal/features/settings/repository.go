package settings

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/storage"
)

// SettingsRepository holds the three admin-managed lists. Each list is persisted
// under its own key.
type SettingsRepository interface {
	LeadSources() *storage.Collection[models.ConfigOption]
	UnitTypes() *storage.Collection[models.ConfigOption]
	SalesReps() *storage.Collection[models.User]
}

type SettingsRepositoryImpl struct {
	leadSources *storage.Collection[models.ConfigOption]
	unitTypes   *storage.Collection[models.ConfigOption]
	salesReps   *storage.Collection[models.User]
}

func NewSettingsRepository(store *storage.Store) SettingsRepository {
	ctx := context.Background()
	optionID := func(o models.ConfigOption) string { return o.ID }
	return &SettingsRepositoryImpl{
		leadSources: storage.NewCollection(ctx, store, models.CollectionLeadSources, models.DefaultLeadSources(), optionID),
		unitTypes:   storage.NewCollection(ctx, store, models.CollectionUnitTypes, models.DefaultUnitTypes(), optionID),
		salesReps: storage.NewCollection(ctx, store, models.CollectionSalesReps, models.DefaultSalesReps(),
			func(u models.User) string { return u.ID }),
	}
}

func (r *SettingsRepositoryImpl) LeadSources() *storage.Collection[models.ConfigOption] {
	return r.leadSources
}

func (r *SettingsRepositoryImpl) UnitTypes() *storage.Collection[models.ConfigOption] {
	return r.unitTypes
}

func (r *SettingsRepositoryImpl) SalesReps() *storage.Collection[models.User] {
	return r.salesReps
}
