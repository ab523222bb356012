package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Iwan2264/HMS/models"
)

// sessionTTL keeps abandoned sessions from accumulating in redis.
const sessionTTL = 24 * time.Hour

// RedisStore keeps sessions in redis so they survive process restarts.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(id string) (*models.Session, error) {
	data, err := r.client.Get(context.Background(), "session:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *RedisStore) Save(s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), "session:"+s.ID, data, sessionTTL).Err()
}
