package stores

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var (
	ErrHashNotFound          = errors.New("partial hash not found")
	ErrStoreRedisUnavailable = errors.New("partial hash redis unavailable")
)

// PartialHashStore persists one Redis hash per user: field = pattern encoded
// as a decimal string, value = the PHC hash of the selected characters.
type PartialHashStore struct {
	redis  redis.UniversalClient
	prefix string
}

func NewPartialHashStore(redisClient redis.UniversalClient, prefix string) *PartialHashStore {
	if prefix == "" {
		prefix = "pph"
	}
	return &PartialHashStore{
		redis:  redisClient,
		prefix: prefix,
	}
}

func (s *PartialHashStore) key(userID string) string {
	return s.prefix + ":" + userID
}

// ReplaceAll atomically replaces a user's whole pattern set: old rows are
// deleted and the new rows inserted inside one MULTI/EXEC, so a concurrent
// Challenge never observes a mix of two enrollments.
func (s *PartialHashStore) ReplaceAll(ctx context.Context, userID string, hashes map[uint64]string) error {
	key := s.key(userID)

	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(hashes) > 0 {
			fields := make([]interface{}, 0, len(hashes)*2)
			for p, h := range hashes {
				fields = append(fields, strconv.FormatUint(p, 10), h)
			}
			pipe.HSet(ctx, key, fields...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreRedisUnavailable, err)
	}

	return nil
}

// Lookup returns the stored hash for (userID, pattern), or ErrHashNotFound.
func (s *PartialHashStore) Lookup(ctx context.Context, userID string, p uint64) (string, error) {
	value, err := s.redis.HGet(ctx, s.key(userID), strconv.FormatUint(p, 10)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrHashNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrStoreRedisUnavailable, err)
	}

	return value, nil
}

// RandomPattern picks one of the user's stored patterns uniformly at random.
func (s *PartialHashStore) RandomPattern(ctx context.Context, userID string) (uint64, error) {
	fields, err := s.redis.HRandField(ctx, s.key(userID), 1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrHashNotFound
		}
		return 0, fmt.Errorf("%w: %v", ErrStoreRedisUnavailable, err)
	}
	if len(fields) == 0 {
		return 0, ErrHashNotFound
	}

	p, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt pattern field %q: %v", fields[0], err)
	}

	return p, nil
}

// Delete removes every stored pattern for the user. Deleting a user without
// rows is not an error.
func (s *PartialHashStore) Delete(ctx context.Context, userID string) error {
	if err := s.redis.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreRedisUnavailable, err)
	}
	return nil
}

// Count returns the number of stored patterns for the user.
func (s *PartialHashStore) Count(ctx context.Context, userID string) (int, error) {
	n, err := s.redis.HLen(ctx, s.key(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreRedisUnavailable, err)
	}
	return int(n), nil
}
