package area

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/storage"
)

type AreaRepository interface {
	FindAll() []models.Area
	FindByID(id string) (models.Area, bool)
	Create(ctx context.Context, area models.Area) error
	Update(ctx context.Context, id string, patch models.AreaPatch) (models.Area, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type AreaRepositoryImpl struct {
	Collection *storage.Collection[models.Area]
}

func NewAreaRepository(store *storage.Store) AreaRepository {
	return &AreaRepositoryImpl{
		Collection: storage.NewCollection(context.Background(), store, models.CollectionAreas, models.DefaultAreas(),
			func(a models.Area) string { return a.ID }),
	}
}

func (r *AreaRepositoryImpl) FindAll() []models.Area {
	return r.Collection.All()
}

func (r *AreaRepositoryImpl) FindByID(id string) (models.Area, bool) {
	return r.Collection.Find(id)
}

func (r *AreaRepositoryImpl) Create(ctx context.Context, area models.Area) error {
	return r.Collection.Prepend(ctx, area)
}

func (r *AreaRepositoryImpl) Update(ctx context.Context, id string, patch models.AreaPatch) (models.Area, bool, error) {
	return r.Collection.Update(ctx, id, patch.Apply)
}

func (r *AreaRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	return r.Collection.Delete(ctx, id)
}
