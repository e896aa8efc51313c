package usecase

import (
	"fmt"

	"portfolio-site/internal/domain"
)

// HostColorScheme reports the colour scheme the visitor's system prefers,
// or "" when it is unknown.
type HostColorScheme func() string

type themeStore struct {
	storage   domain.PreferenceStorage
	host      HostColorScheme
	mode      domain.ThemeMode
	observers map[int]domain.ThemeObserver
	order     []int
	nextID    int
}

// NewThemeStore reads the persisted mode, defaulting to system when nothing
// valid was stored. The store is owned by a single request and is not locked.
func NewThemeStore(storage domain.PreferenceStorage, host HostColorScheme) domain.ThemeStore {
	s := &themeStore{
		storage:   storage,
		host:      host,
		mode:      domain.DefaultThemeMode,
		observers: make(map[int]domain.ThemeObserver),
	}
	if raw, ok := storage.Load(); ok {
		if m, err := domain.ParseThemeMode(raw); err == nil {
			s.mode = m
		}
	}
	return s
}

func (s *themeStore) Get() domain.ThemeMode {
	return s.mode
}

// Set persists mode and notifies observers in subscription order.
func (s *themeStore) Set(mode domain.ThemeMode) error {
	if _, err := domain.ParseThemeMode(string(mode)); err != nil {
		return err
	}
	if err := s.storage.Save(string(mode)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	s.mode = mode
	for _, id := range s.order {
		if fn, ok := s.observers[id]; ok {
			fn(mode)
		}
	}
	return nil
}

func (s *themeStore) Toggle() (domain.ThemeMode, error) {
	next := s.mode.Next()
	if err := s.Set(next); err != nil {
		return s.mode, err
	}
	return next, nil
}

// Resolved maps system onto the host preference, falling back to light.
func (s *themeStore) Resolved() domain.ThemeMode {
	if s.mode != domain.ThemeSystem {
		return s.mode
	}
	if s.host != nil && s.host() == string(domain.ThemeDark) {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

func (s *themeStore) Subscribe(fn domain.ThemeObserver) func() {
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.order = append(s.order, id)
	return func() {
		delete(s.observers, id)
	}
}
