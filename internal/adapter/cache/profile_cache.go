package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

const profileKeyPrefix = "studyplanner:profile:"

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address is empty")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// ProfileCache serves FindByID from redis for ttl. Redis failures fall through to
// the wrapped repository.
type ProfileCache struct {
	next   ports.ProfileRepository
	client *redis.Client
	ttl    time.Duration
}

var _ ports.ProfileRepository = (*ProfileCache)(nil)

func NewProfileCache(next ports.ProfileRepository, client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{next: next, client: client, ttl: ttl}
}

type cachedProfile struct {
	ID            uuid.UUID `json:"id"`
	Role          string    `json:"role"`
	Grade         *int      `json:"grade,omitempty"`
	DisplayName   string    `json:"display_name"`
	StudentNumber *int      `json:"student_number,omitempty"`
}

func (c *ProfileCache) FindByID(ctx context.Context, id uuid.UUID) (domain.UserProfile, error) {
	key := profileKeyPrefix + id.String()

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedProfile
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached.toDomain(), nil
		}
		zap.L().Warn("discarding malformed cached profile", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		zap.L().Warn("profile cache read failed", zap.String("key", key), zap.Error(err))
	}

	profile, err := c.next.FindByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, err
	}

	payload, err := json.Marshal(fromDomain(profile))
	if err != nil {
		return profile, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		zap.L().Warn("profile cache write failed", zap.String("key", key), zap.Error(err))
	}
	return profile, nil
}

func (c *ProfileCache) ListStudentsByGrade(ctx context.Context, grade int) ([]domain.UserProfile, error) {
	return c.next.ListStudentsByGrade(ctx, grade)
}

func fromDomain(profile domain.UserProfile) cachedProfile {
	return cachedProfile{
		ID:            profile.ID,
		Role:          string(profile.Role),
		Grade:         profile.Grade,
		DisplayName:   profile.DisplayName,
		StudentNumber: profile.StudentNumber,
	}
}

func (p cachedProfile) toDomain() domain.UserProfile {
	return domain.UserProfile{
		ID:            p.ID,
		Role:          domain.Role(p.Role),
		Grade:         p.Grade,
		DisplayName:   p.DisplayName,
		StudentNumber: p.StudentNumber,
	}
}
