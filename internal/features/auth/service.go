package auth

import (
	"context"
	"sync"

	"go-estate-crm/internal/common/models"

	"go.uber.org/zap"
)

// SessionService is the role gate. There is exactly one current session per
// process; it is either anonymous or holds one roster user.
type SessionService interface {
	Login(ctx context.Context, email, password string) (bool, error)
	Logout(ctx context.Context) error
	Current() *models.User
	IsAuthenticated() bool
	IsAdmin() bool
	CanAccessSettings() bool
	VisibleLeads(leads []models.Lead) []models.Lead
}

type SessionServiceImpl struct {
	Repo   SessionRepository
	Roster []models.Credential
	Logger *zap.Logger

	mu      sync.RWMutex
	current *models.User
}

// NewSessionService rehydrates the persisted session, if any.
func NewSessionService(repo SessionRepository, logger *zap.Logger) SessionService {
	s := &SessionServiceImpl{
		Repo:   repo,
		Roster: models.DefaultRoster(),
		Logger: logger,
	}
	s.current = repo.Load(context.Background())
	return s
}

// Login matches email, password and the active flag exactly. A failed attempt
// leaves the current session as it was.
func (s *SessionServiceImpl) Login(ctx context.Context, email, password string) (bool, error) {
	for _, cred := range s.Roster {
		if cred.Email != email || cred.Password != password || !cred.IsActive {
			continue
		}
		user := cred.User
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.Repo.Save(ctx, user); err != nil {
			return false, err
		}
		s.current = &user
		s.Logger.Info("user logged in", zap.String("userId", user.ID), zap.String("role", string(user.Role)))
		return true, nil
	}
	s.Logger.Info("login rejected", zap.String("email", email))
	return false, nil
}

// Logout always ends up anonymous in memory, even when the stored session
// could not be removed.
func (s *SessionServiceImpl) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return s.Repo.Clear(ctx)
}

func (s *SessionServiceImpl) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *SessionServiceImpl) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *SessionServiceImpl) IsAdmin() bool {
	return s.Current().IsAdmin()
}

func (s *SessionServiceImpl) CanAccessSettings() bool {
	return s.IsAdmin()
}

// VisibleLeads returns every lead for admins, the own and unassigned leads for
// sales users and nothing when nobody is logged in.
func (s *SessionServiceImpl) VisibleLeads(leads []models.Lead) []models.Lead {
	return FilterVisible(s.Current(), leads)
}

func FilterVisible(user *models.User, leads []models.Lead) []models.Lead {
	if user == nil {
		return []models.Lead{}
	}
	if user.IsAdmin() {
		return leads
	}
	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if l.AssignedTo == user.ID || l.AssignedTo == "" {
			out = append(out, l)
		}
	}
	return out
}
