package wire

import (
	"context"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/mithrel/nodehtml/internal/cache"
	"github.com/mithrel/nodehtml/internal/config"
	"github.com/mithrel/nodehtml/internal/render"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg      *viper.Viper
	Log      *log.Logger
	Cache    cache.Store
	Renderer *render.Service
}

// BuildApp wires dependencies with the provided config. The cache is only
// opened when cache.enabled is set.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	logger := log.New(os.Stderr, "nodehtml ", log.LstdFlags)
	var store cache.Store
	if v.GetBool("cache.enabled") {
		s, err := cache.Open(ctx, config.ResolveCacheDSN(v))
		if err != nil {
			return nil, err
		}
		store = s
	}
	return &App{
		Cfg:      v,
		Log:      logger,
		Cache:    store,
		Renderer: render.New(store, logger),
	}, nil
}

// Close releases the cache, if any.
func (a *App) Close() error {
	if a.Cache == nil {
		return nil
	}
	return a.Cache.Close()
}
