package settings

import (
	"context"
	"strings"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/events"
	"go-estate-crm/internal/storage"

	"go.uber.org/zap"
)

type SettingsService interface {
	LeadSources() []models.ConfigOption
	ActiveLeadSources() []models.ConfigOption
	AddLeadSource(ctx context.Context, label string) (models.ConfigOption, error)
	RemoveLeadSource(ctx context.Context, id string) (bool, error)

	UnitTypes() []models.ConfigOption
	ActiveUnitTypes() []models.ConfigOption
	AddUnitType(ctx context.Context, label string) (models.ConfigOption, error)
	RemoveUnitType(ctx context.Context, id string) (bool, error)

	SalesReps() []models.User
	ActiveSalesReps() []models.User
	GetSalesRep(id string) (models.User, bool)
	AddSalesRep(ctx context.Context, input SalesRepInput) (models.User, error)
	RemoveSalesRep(ctx context.Context, id string) (bool, error)
	ToggleSalesRepStatus(ctx context.Context, id string) (models.User, bool, error)

	ActiveOptions() ActiveOptions
}

type SettingsServiceImpl struct {
	Repo   SettingsRepository
	Events events.Publisher
	Clock  models.Clock
	NewID  models.IDGenerator
	Logger *zap.Logger
}

func NewSettingsService(repo SettingsRepository, publisher events.Publisher, clock models.Clock, newID models.IDGenerator, logger *zap.Logger) SettingsService {
	return &SettingsServiceImpl{
		Repo:   repo,
		Events: publisher,
		Clock:  clock,
		NewID:  newID,
		Logger: logger,
	}
}

// keyedList is satisfied by every storage.Collection instantiation.
type keyedList interface {
	Key() string
	Delete(ctx context.Context, id string) (bool, error)
}

func activeOptions(c *storage.Collection[models.ConfigOption]) []models.ConfigOption {
	return c.Filter(func(o models.ConfigOption) bool { return o.IsActive })
}

func (s *SettingsServiceImpl) LeadSources() []models.ConfigOption {
	return s.Repo.LeadSources().All()
}

func (s *SettingsServiceImpl) ActiveLeadSources() []models.ConfigOption {
	return activeOptions(s.Repo.LeadSources())
}

func (s *SettingsServiceImpl) AddLeadSource(ctx context.Context, label string) (models.ConfigOption, error) {
	return s.addOption(ctx, s.Repo.LeadSources(), label)
}

func (s *SettingsServiceImpl) RemoveLeadSource(ctx context.Context, id string) (bool, error) {
	return s.remove(ctx, s.Repo.LeadSources(), id)
}

func (s *SettingsServiceImpl) UnitTypes() []models.ConfigOption {
	return s.Repo.UnitTypes().All()
}

func (s *SettingsServiceImpl) ActiveUnitTypes() []models.ConfigOption {
	return activeOptions(s.Repo.UnitTypes())
}

func (s *SettingsServiceImpl) AddUnitType(ctx context.Context, label string) (models.ConfigOption, error) {
	return s.addOption(ctx, s.Repo.UnitTypes(), label)
}

func (s *SettingsServiceImpl) RemoveUnitType(ctx context.Context, id string) (bool, error) {
	return s.remove(ctx, s.Repo.UnitTypes(), id)
}

func (s *SettingsServiceImpl) SalesReps() []models.User {
	return s.Repo.SalesReps().All()
}

func (s *SettingsServiceImpl) ActiveSalesReps() []models.User {
	return s.Repo.SalesReps().Filter(func(u models.User) bool { return u.IsActive })
}

func (s *SettingsServiceImpl) GetSalesRep(id string) (models.User, bool) {
	return s.Repo.SalesReps().Find(id)
}

// AddSalesRep appends an active sales-role user.
func (s *SettingsServiceImpl) AddSalesRep(ctx context.Context, input SalesRepInput) (models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.User{}, ErrBlankName
	}
	rep := models.User{
		ID:        s.NewID(),
		Name:      name,
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Role:      models.RoleSales,
		IsActive:  true,
		CreatedAt: s.Clock(),
	}
	if err := s.Repo.SalesReps().Append(ctx, rep); err != nil {
		return models.User{}, err
	}
	s.publish(models.CollectionSalesReps, rep.ID, events.ActionCreate)
	return rep, nil
}

func (s *SettingsServiceImpl) RemoveSalesRep(ctx context.Context, id string) (bool, error) {
	return s.remove(ctx, s.Repo.SalesReps(), id)
}

func (s *SettingsServiceImpl) ToggleSalesRepStatus(ctx context.Context, id string) (models.User, bool, error) {
	reps := s.Repo.SalesReps()
	rep, found, err := reps.Update(ctx, id, func(u *models.User) { u.IsActive = !u.IsActive })
	if err != nil || !found {
		return rep, found, err
	}
	s.publish(reps.Key(), id, events.ActionUpdate)
	return rep, true, nil
}

func (s *SettingsServiceImpl) ActiveOptions() ActiveOptions {
	return ActiveOptions{
		LeadSources: s.ActiveLeadSources(),
		UnitTypes:   s.ActiveUnitTypes(),
		SalesReps:   s.ActiveSalesReps(),
	}
}

func (s *SettingsServiceImpl) addOption(ctx context.Context, c *storage.Collection[models.ConfigOption], label string) (models.ConfigOption, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.ConfigOption{}, ErrBlankLabel
	}
	option := models.ConfigOption{ID: s.NewID(), Label: label, IsActive: true}
	if err := c.Append(ctx, option); err != nil {
		return models.ConfigOption{}, err
	}
	s.publish(c.Key(), option.ID, events.ActionCreate)
	return option, nil
}

func (s *SettingsServiceImpl) remove(ctx context.Context, c keyedList, id string) (bool, error) {
	removed, err := c.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.publish(c.Key(), id, events.ActionDelete)
	return true, nil
}

func (s *SettingsServiceImpl) publish(collection, id, action string) {
	s.Events.Publish(events.Change{Collection: collection, RecordID: id, Action: action})
	s.Logger.Debug("settings changed", zap.String("collection", collection), zap.String("id", id), zap.String("action", action))
}
