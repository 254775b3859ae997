package project

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/storage"
)

type ProjectRepository interface {
	FindAll() []models.Project
	FindByID(id string) (models.Project, bool)
	FindByArea(areaID string) []models.Project
	Create(ctx context.Context, project models.Project) error
	Update(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ProjectRepositoryImpl struct {
	Collection *storage.Collection[models.Project]
}

func NewProjectRepository(store *storage.Store) ProjectRepository {
	return &ProjectRepositoryImpl{
		Collection: storage.NewCollection(context.Background(), store, models.CollectionProjects, models.DefaultProjects(),
			func(p models.Project) string { return p.ID }),
	}
}

func (r *ProjectRepositoryImpl) FindAll() []models.Project {
	return r.Collection.All()
}

func (r *ProjectRepositoryImpl) FindByID(id string) (models.Project, bool) {
	return r.Collection.Find(id)
}

func (r *ProjectRepositoryImpl) FindByArea(areaID string) []models.Project {
	return r.Collection.Filter(func(p models.Project) bool { return p.AreaID == areaID })
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project models.Project) error {
	return r.Collection.Prepend(ctx, project)
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, bool, error) {
	return r.Collection.Update(ctx, id, patch.Apply)
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	return r.Collection.Delete(ctx, id)
}
