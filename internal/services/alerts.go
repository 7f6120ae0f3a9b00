package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"planwise-backend/internal/models"
)

// AlertPublisher pushes burnout alerts to a user's websocket connections
// via Redis pub/sub.
type AlertPublisher struct {
	redis *redis.Client
}

func NewAlertPublisher(redisClient *redis.Client) *AlertPublisher {
	return &AlertPublisher{redis: redisClient}
}

func (p *AlertPublisher) Publish(ctx context.Context, userID uuid.UUID, msg models.WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	p.redis.Publish(ctx, fmt.Sprintf("user_alerts:%s", userID.String()), string(data))
}
