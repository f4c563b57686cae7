// Package redis is the shared reportcfg backend for multi-user
// deployments.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/store/reportcfg"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "assetatlas:reportcfg:"

type store struct {
	client *redis.Client
}

func NewStore(addr string) reportcfg.Store {
	return &store{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *store) Save(ctx context.Context, cfg domain.ReportConfig) error {
	now := time.Now()
	if existing, err := s.Get(ctx, cfg.Name); err == nil {
		cfg.CreatedAt = existing.CreatedAt
	} else {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now

	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode report config %q: %w", cfg.Name, err)
	}
	return s.client.Set(ctx, keyPrefix+cfg.Name, payload, 0).Err()
}

func (s *store) Get(ctx context.Context, name string) (*domain.ReportConfig, error) {
	payload, err := s.client.Get(ctx, keyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, reportcfg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report config %q: %w", name, err)
	}

	var cfg domain.ReportConfig
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode report config %q: %w", name, err)
	}
	return &cfg, nil
}

func (s *store) List(ctx context.Context) ([]domain.ReportConfig, error) {
	var configs []domain.ReportConfig

	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		payload, err := s.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", iter.Val(), err)
		}
		var cfg domain.ReportConfig
		if err := json.Unmarshal(payload, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", iter.Val(), err)
		}
		configs = append(configs, cfg)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan report configs: %w", err)
	}
	return configs, nil
}

func (s *store) Delete(ctx context.Context, name string) error {
	deleted, err := s.client.Del(ctx, keyPrefix+name).Result()
	if err != nil {
		return fmt.Errorf("failed to delete report config %q: %w", name, err)
	}
	if deleted == 0 {
		return reportcfg.ErrNotFound
	}
	return nil
}
