package lead

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/storage"
)

type LeadRepository interface {
	FindAll() []models.Lead
	FindByID(id string) (models.Lead, bool)
	Create(ctx context.Context, lead models.Lead) error
	Update(ctx context.Context, id string, patch models.LeadPatch) (models.Lead, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type LeadRepositoryImpl struct {
	Collection *storage.Collection[models.Lead]
}

func NewLeadRepository(store *storage.Store) LeadRepository {
	return &LeadRepositoryImpl{
		Collection: storage.NewCollection(context.Background(), store, models.CollectionLeads, models.DefaultLeads(),
			func(l models.Lead) string { return l.ID }),
	}
}

func (r *LeadRepositoryImpl) FindAll() []models.Lead {
	return r.Collection.All()
}

func (r *LeadRepositoryImpl) FindByID(id string) (models.Lead, bool) {
	return r.Collection.Find(id)
}

func (r *LeadRepositoryImpl) Create(ctx context.Context, lead models.Lead) error {
	return r.Collection.Prepend(ctx, lead)
}

func (r *LeadRepositoryImpl) Update(ctx context.Context, id string, patch models.LeadPatch) (models.Lead, bool, error) {
	return r.Collection.Update(ctx, id, patch.Apply)
}

func (r *LeadRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	return r.Collection.Delete(ctx, id)
}
