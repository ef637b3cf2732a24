package scheduler

import (
	"context"
	"crypto/tls"
	"fmt"

	"agentic_backend/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	client *asynq.Client
	redis  *redis.Client
	queue  string
}

// ContactNotificationQueue hands contact notifications to the worker.
type ContactNotificationQueue interface {
	EnqueueContactNotification(ctx context.Context, payload ContactNotificationPayload) error
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisOptions(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	return &Client{
		client: asynq.NewClient(asynqClientOpt(opt)),
		redis:  redis.NewClient(opt),
		queue:  queueName(cfg),
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.redis.Close()
	return c.client.Close()
}

// Ping checks the queue backend. It backs the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.redis.Ping(ctx).Err()
}

// EnqueueContactNotification queues one delivery attempt. Failed deliveries
// are not retried; the submission is already in the server log.
func (c *Client) EnqueueContactNotification(ctx context.Context, payload ContactNotificationPayload) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewContactNotificationTask(payload)
	if err != nil {
		return err
	}

	opts := []asynq.Option{asynq.Queue(c.queue), asynq.MaxRetry(0)}
	if payload.SubmissionID != "" {
		opts = append(opts, asynq.TaskID(payload.SubmissionID))
	}
	_, err = c.client.EnqueueContext(ctx, task, opts...)
	return err
}

func queueName(cfg config.SchedulerConfig) string {
	if queue := cfg.GetAsynqQueueName(); queue != "" {
		return queue
	}
	return "default"
}

func redisOptions(redisURL string, tlsInsecure bool) (*redis.Options, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		opt.TLSConfig = clone
	} else if tlsInsecure {
		opt.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return opt, nil
}

func asynqClientOpt(opt *redis.Options) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}
}

var _ ContactNotificationQueue = (*Client)(nil)
