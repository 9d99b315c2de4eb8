package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/transitlab/netlint/pkg/cache"
	"github.com/transitlab/netlint/pkg/report"
	"github.com/transitlab/netlint/pkg/server"
)

// serveOpts holds the command-line flags for the serve command. Flags
// override the corresponding netlint.toml settings.
type serveOpts struct {
	addr      string
	redisAddr string
	mongoURI  string
	mongoDB   string
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := &serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP API",
		Long: `Serve exposes network analysis over HTTP. POST a network document to
/v1/reports to analyze it; fetch stored reports at /v1/reports/{id}.

Without --mongo-uri reports are held in memory and lost on restart.
With --redis-addr, identical documents share cached analysis results
across server instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, then :8080)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "redis address for the shared report cache")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "mongodb URI for durable report storage")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-database", "", "mongodb database name")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	addr := firstNonEmpty(opts.addr, cfg.Server.Addr)
	redisAddr := firstNonEmpty(opts.redisAddr, cfg.Server.RedisAddr)
	mongoURI := firstNonEmpty(opts.mongoURI, cfg.Server.MongoURI)
	mongoDB := firstNonEmpty(opts.mongoDB, cfg.Server.MongoDatabase)

	store, err := c.newStore(ctx, mongoURI, mongoDB)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			c.Logger.Warn("store close failed", "err", err)
		}
	}()

	reportCache, err := c.newServerCache(ctx, redisAddr)
	if err != nil {
		return err
	}
	defer reportCache.Close()

	srv := server.New(store, reportCache, c.Logger)
	return srv.ListenAndServe(ctx, addr)
}

// newStore picks the report store backend: MongoDB when configured,
// otherwise in-memory.
func (c *CLI) newStore(ctx context.Context, mongoURI, mongoDB string) (report.Store, error) {
	if mongoURI == "" {
		c.Logger.Info("using in-memory report store")
		return report.NewMemoryStore(), nil
	}
	c.Logger.Info("using mongodb report store", "uri", mongoURI, "database", mongoDB)
	return report.NewMongoStore(ctx, mongoURI, mongoDB)
}

// newServerCache picks the server-side cache backend: Redis when
// configured, otherwise the local file cache.
func (c *CLI) newServerCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr == "" {
		return c.newCache(false)
	}
	c.Logger.Info("using redis report cache", "addr", redisAddr)
	rc, err := cache.NewRedisCache(ctx, redisAddr)
	if err != nil {
		return nil, err
	}
	return cache.Scoped(rc, appName+":"), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
