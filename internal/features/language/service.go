package language

import (
	"context"
	"errors"
	"sync"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/storage"

	"go.uber.org/zap"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

type LanguageService interface {
	Current() Language
	SetLanguage(ctx context.Context, lang Language) error
	Translate(key string) string
	IsRTL() bool
}

type LanguageServiceImpl struct {
	Store  *storage.Store
	Logger *zap.Logger

	mu   sync.RWMutex
	lang Language
}

// NewLanguageService restores the saved preference. Anything unknown falls back to English.
func NewLanguageService(store *storage.Store, logger *zap.Logger) LanguageService {
	lang := storage.Load(context.Background(), store, models.KeyLanguage, English)
	if !lang.Valid() {
		lang = English
	}
	return &LanguageServiceImpl{Store: store, Logger: logger, lang: lang}
}

func (s *LanguageServiceImpl) Current() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

func (s *LanguageServiceImpl) SetLanguage(ctx context.Context, lang Language) error {
	if !lang.Valid() {
		return ErrUnsupportedLanguage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := storage.Save(ctx, s.Store, models.KeyLanguage, lang); err != nil {
		return err
	}
	s.lang = lang
	s.Logger.Info("language changed", zap.String("lang", string(lang)))
	return nil
}

// Translate returns the key itself when there is no entry for it.
func (s *LanguageServiceImpl) Translate(key string) string {
	if v, ok := translations[s.Current()][key]; ok {
		return v
	}
	return key
}

func (s *LanguageServiceImpl) IsRTL() bool {
	return s.Current() == Arabic
}
