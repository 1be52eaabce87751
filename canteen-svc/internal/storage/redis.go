package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"canteen/canteen-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisSessions struct {
	Client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{Client: client}
}

func (s *RedisSessions) sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessions) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.Client.Set(ctx, s.sessionKey(token), userID, ttl).Err()
}

func (s *RedisSessions) Lookup(ctx context.Context, token string) (string, error) {
	userID, err := s.Client.Get(ctx, s.sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	return userID, err
}

func (s *RedisSessions) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, s.sessionKey(token)).Err()
}

// RedisCarts keeps each cart as a hash of menu item id to quantity.
type RedisCarts struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCarts(client *redis.Client, ttl time.Duration) *RedisCarts {
	return &RedisCarts{Client: client, TTL: ttl}
}

func (c *RedisCarts) cartKey(userID string) string {
	return "cart:" + userID
}

func (c *RedisCarts) touch(ctx context.Context, key string) {
	if c.TTL > 0 {
		c.Client.Expire(ctx, key, c.TTL)
	}
}

func (c *RedisCarts) Add(ctx context.Context, userID, menuItemID string, quantity int) (int, error) {
	key := c.cartKey(userID)
	total, err := c.Client.HIncrBy(ctx, key, menuItemID, int64(quantity)).Result()
	if err != nil {
		return 0, err
	}
	c.touch(ctx, key)
	return int(total), nil
}

// Set stores the quantity; zero or less removes the line.
func (c *RedisCarts) Set(ctx context.Context, userID, menuItemID string, quantity int) error {
	key := c.cartKey(userID)
	if quantity <= 0 {
		return c.Client.HDel(ctx, key, menuItemID).Err()
	}
	if err := c.Client.HSet(ctx, key, menuItemID, quantity).Err(); err != nil {
		return err
	}
	c.touch(ctx, key)
	return nil
}

func (c *RedisCarts) Remove(ctx context.Context, userID, menuItemID string) error {
	return c.Client.HDel(ctx, c.cartKey(userID), menuItemID).Err()
}

func (c *RedisCarts) Clear(ctx context.Context, userID string) error {
	return c.Client.Del(ctx, c.cartKey(userID)).Err()
}

func (c *RedisCarts) Items(ctx context.Context, userID string) (map[string]int, error) {
	raw, err := c.Client.HGetAll(ctx, c.cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	items := make(map[string]int, len(raw))
	for id, qty := range raw {
		n, err := strconv.Atoi(qty)
		if err != nil || n <= 0 {
			continue
		}
		items[id] = n
	}
	return items, nil
}

// RedisNotifier fans out document changes over Redis Pub/Sub.
type RedisNotifier struct {
	Client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{Client: client}
}

func (n *RedisNotifier) Publish(ctx context.Context, channel, id string) error {
	return n.Client.Publish(ctx, channel, id).Err()
}

// Subscribe returns once the subscription is confirmed. The channel closes
// when ctx is done or the returned close func is called.
func (n *RedisNotifier) Subscribe(ctx context.Context, channels ...string) (<-chan domain.Change, func() error, error) {
	pubsub := n.Client.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, err
	}

	out := make(chan domain.Change)
	go func() {
		defer close(out)
		in := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- domain.Change{Channel: msg.Channel, ID: msg.Payload}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, pubsub.Close, nil
}
