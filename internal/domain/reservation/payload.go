package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PayloadStore holds the transient confirmation payload handed from a
// successful submission to the immediately following confirmation render.
// A payload is consumed at most once and expires on its own otherwise;
// absence is never an error.
type PayloadStore interface {
	Stage(ctx context.Context, res *Reservation) error
	Take(ctx context.Context, id uuid.UUID) (*Reservation, error)
}

type redisPayloadStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPayloadStore creates a Redis-backed one-shot payload store
func NewPayloadStore(client *redis.Client, ttl time.Duration) PayloadStore {
	return &redisPayloadStore{client: client, ttl: ttl}
}

func payloadKey(id uuid.UUID) string {
	return "reservation:confirmation:" + id.String()
}

func (s *redisPayloadStore) Stage(ctx context.Context, res *Reservation) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, payloadKey(res.ID), data, s.ttl).Err()
}

// Take removes and returns the staged payload. Returns (nil, nil) when no
// payload exists for the identifier.
func (s *redisPayloadStore) Take(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	data, err := s.client.GetDel(ctx, payloadKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var res Reservation
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
