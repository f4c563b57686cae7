// Package memory is the in-process reportcfg backend.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/store/reportcfg"
)

type store struct {
	mu      sync.RWMutex
	configs map[string]domain.ReportConfig
}

func NewStore() reportcfg.Store {
	return &store{configs: make(map[string]domain.ReportConfig)}
}

func (s *store) Save(_ context.Context, cfg domain.ReportConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.configs[cfg.Name]; ok {
		cfg.CreatedAt = existing.CreatedAt
	} else {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now
	s.configs[cfg.Name] = cfg
	return nil
}

func (s *store) Get(_ context.Context, name string) (*domain.ReportConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[name]
	if !ok {
		return nil, reportcfg.ErrNotFound
	}
	return &cfg, nil
}

func (s *store) List(_ context.Context) ([]domain.ReportConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	configs := make([]domain.ReportConfig, 0, len(s.configs))
	for _, cfg := range s.configs {
		configs = append(configs, cfg)
	}
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})
	return configs, nil
}

func (s *store) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[name]; !ok {
		return reportcfg.ErrNotFound
	}
	delete(s.configs, name)
	return nil
}
