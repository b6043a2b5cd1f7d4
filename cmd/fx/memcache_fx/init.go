package memcache_fx

import (
	"go.uber.org/fx"

	"myguide/internal/config"
	mem "myguide/pkg/memcache"
)

var Module = fx.Provide(provideDraftStore)

func provideDraftStore(cfg *config.Config) mem.DraftStore {
	return mem.NewDrafts(cfg.DraftTTL)
}
