package bootstrap

import (
	"order-followup/internal/infra/channelapi"
	"order-followup/internal/pkg/config"
	"order-followup/internal/usecase/keepalive"

	"go.uber.org/fx"
)

var ChannelModule = fx.Module("channel",
	fx.Provide(
		NewChannelAPI,
	),
)

func NewChannelAPI(cfg config.Config) keepalive.ChannelAPI {
	return channelapi.NewClient(cfg.KeepAlive)
}
