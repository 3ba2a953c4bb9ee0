package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"

	model "itask.com/itask/internal/models"
)

type RedisStore struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client rueidis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) Create(ctx context.Context, account model.Account) (string, error) {
	payload, err := json.Marshal(account)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	cmd := s.client.B().Set().
		Key(s.key(token)).
		Value(string(payload)).
		Ex(s.ttl).
		Build()

	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*model.Account, error) {
	cmd := s.client.B().Get().Key(s.key(token)).Build()
	result := s.client.Do(ctx, cmd)

	payload, err := result.AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(payload, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	cmd := s.client.B().Del().Key(s.key(token)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *RedisStore) key(token string) string {
	return s.prefix + ":" + token
}
