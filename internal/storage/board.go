package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/zxjshishen/CJ-DC/internal/domain"

	"github.com/redis/go-redis/v9"
)

const boardPendingKey = "kds:pending"

// Board mirrors the pending-order queue into redis for the kitchen display:
// a sorted set ordered by placement time plus a hash per order with the
// details the kitchen needs.
type Board struct {
	Client *redis.Client
	ctx    context.Context
}

func NewBoard(client *redis.Client) *Board {
	return &Board{Client: client, ctx: context.Background()}
}

func (b *Board) orderKey(orderID string) string {
	return "kds:order:" + orderID
}

func (b *Board) RecordPlaced(event domain.OrderEvent) error {
	if err := b.Client.ZAdd(b.ctx, boardPendingKey, redis.Z{
		Score:  float64(event.Timestamp.Unix()),
		Member: event.OrderID,
	}).Err(); err != nil {
		return err
	}

	key := b.orderKey(event.OrderID)
	if err := b.Client.HSet(b.ctx, key, map[string]interface{}{
		"table_no":   event.TableNo,
		"total":      strconv.FormatFloat(event.Total, 'f', 2, 64),
		"item_count": event.ItemCount,
		"placed_at":  event.Timestamp.Unix(),
	}).Err(); err != nil {
		return err
	}
	return b.Client.Expire(b.ctx, key, 24*time.Hour).Err()
}

func (b *Board) RecordCompleted(event domain.OrderEvent) error {
	if err := b.Client.ZRem(b.ctx, boardPendingKey, event.OrderID).Err(); err != nil {
		return err
	}
	return b.Client.Del(b.ctx, b.orderKey(event.OrderID)).Err()
}

// Pending returns the order ids currently waiting in the kitchen, oldest first.
func (b *Board) Pending() ([]string, error) {
	return b.Client.ZRange(b.ctx, boardPendingKey, 0, -1).Result()
}
