package chat

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/core/domain"
)

// MaintenanceClient answers every message with the maintenance notice. It
// stands in when no model is configured.
type MaintenanceClient struct {
	log  zerolog.Logger
	once sync.Once
}

func NewMaintenanceClient(log zerolog.Logger) *MaintenanceClient {
	return &MaintenanceClient{log: log}
}

func (c *MaintenanceClient) Initialize(context.Context) error {
	c.once.Do(func() {
		c.log.Info().Msg("chat initialised (maintenance mode)")
	})
	return nil
}

func (c *MaintenanceClient) SendMessage(context.Context, string) (string, error) {
	return domain.ChatMaintenanceReply, nil
}
