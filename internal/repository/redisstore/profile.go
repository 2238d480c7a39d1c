package redisstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/msomdec/little-lemon/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ProfileStore keeps the user profile in a Redis hash named after the
// namespace.
type ProfileStore struct {
	client    *redis.Client
	namespace string
}

// NewClient builds a Redis client and verifies the connection.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewProfileStore creates a Redis-backed ProfileStore.
func NewProfileStore(client *redis.Client, namespace string) *ProfileStore {
	return &ProfileStore{client: client, namespace: namespace}
}

// Save writes all four fields inside MULTI/EXEC.
func (s *ProfileStore) Save(ctx context.Context, profile domain.UserProfile) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.namespace, map[string]any{
			domain.KeyRegistered: strconv.FormatBool(profile.Registered),
			domain.KeyFirstName:  profile.FirstName,
			domain.KeyLastName:   profile.LastName,
			domain.KeyEmail:      profile.Email,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) Load(ctx context.Context) (domain.UserProfile, error) {
	fields, err := s.client.HGetAll(ctx, s.namespace).Result()
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}

	registered, _ := strconv.ParseBool(fields[domain.KeyRegistered])
	return domain.UserProfile{
		Registered: registered,
		FirstName:  fields[domain.KeyFirstName],
		LastName:   fields[domain.KeyLastName],
		Email:      fields[domain.KeyEmail],
	}, nil
}

func (s *ProfileStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.namespace).Err(); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}
