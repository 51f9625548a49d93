// Package events publishes negotiation lifecycle notifications for the
// external collaborators (candidate mailer, employer UI). Delivery is
// fire-and-forget: the service logs publish failures and never lets them
// affect the negotiation transaction.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ChannelRangeSent carries "a range offer went out, mail the
	// candidate their link" notifications.
	ChannelRangeSent = "offer.range.sent"

	// ChannelRangeOutcome carries round outcomes for the employer side.
	ChannelRangeOutcome = "offer.range.outcome"
)

// SentEvent is published on every send/renegotiate.
type SentEvent struct {
	OfferID          string `json:"offer_id"`
	CandidateEmail   string `json:"candidate_email"`
	TokenURL         string `json:"token_url"`
	NegotiationRound int    `json:"negotiation_round"`
}

// OutcomeEvent is published on every accepted candidate submission.
// MatchedSalary is set only on a match; the audience is employer-side, so
// candidate bounds never appear here.
type OutcomeEvent struct {
	OfferID          string `json:"offer_id"`
	Result           string `json:"result"`
	NegotiationRound int    `json:"negotiation_round"`
	MatchedSalary    *int64 `json:"matched_salary,omitempty"`
}

// Publisher dispatches negotiation events.
type Publisher interface {
	RangeSent(ctx context.Context, e SentEvent) error
	RangeOutcome(ctx context.Context, e OutcomeEvent) error
}

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// RedisPublisher publishes events on redis pub/sub channels.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) RangeSent(ctx context.Context, e SentEvent) error {
	return p.publish(ctx, ChannelRangeSent, e)
}

func (p *RedisPublisher) RangeOutcome(ctx context.Context, e OutcomeEvent) error {
	return p.publish(ctx, ChannelRangeOutcome, e)
}

func (p *RedisPublisher) publish(ctx context.Context, channel string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", channel, err)
	}
	if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}

// NopPublisher drops all events. Used when no redis is configured and in
// tests that do not assert on notifications.
type NopPublisher struct{}

func (NopPublisher) RangeSent(context.Context, SentEvent) error       { return nil }
func (NopPublisher) RangeOutcome(context.Context, OutcomeEvent) error { return nil }
