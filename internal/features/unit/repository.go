package unit

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/storage"
)

type UnitRepository interface {
	FindAll() []models.Unit
	FindByID(id string) (models.Unit, bool)
	Find(filter UnitFilter) []models.Unit
	Create(ctx context.Context, unit models.Unit) error
	Update(ctx context.Context, id string, patch models.UnitPatch) (models.Unit, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type UnitRepositoryImpl struct {
	Collection *storage.Collection[models.Unit]
}

func NewUnitRepository(store *storage.Store) UnitRepository {
	return &UnitRepositoryImpl{
		Collection: storage.NewCollection(context.Background(), store, models.CollectionUnits, models.DefaultUnits(),
			func(u models.Unit) string { return u.ID }),
	}
}

func (r *UnitRepositoryImpl) FindAll() []models.Unit {
	return r.Collection.All()
}

func (r *UnitRepositoryImpl) FindByID(id string) (models.Unit, bool) {
	return r.Collection.Find(id)
}

func (r *UnitRepositoryImpl) Find(filter UnitFilter) []models.Unit {
	return r.Collection.Filter(filter.Matches)
}

func (r *UnitRepositoryImpl) Create(ctx context.Context, unit models.Unit) error {
	return r.Collection.Prepend(ctx, unit)
}

func (r *UnitRepositoryImpl) Update(ctx context.Context, id string, patch models.UnitPatch) (models.Unit, bool, error) {
	return r.Collection.Update(ctx, id, patch.Apply)
}

func (r *UnitRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	return r.Collection.Delete(ctx, id)
}
