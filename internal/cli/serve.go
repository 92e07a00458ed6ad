package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/rickerduniya/Sayanho-sub002/internal/api"
	"github.com/rickerduniya/Sayanho-sub002/pkg/config"
	"github.com/rickerduniya/Sayanho-sub002/pkg/store"
)

// serveCommand creates the "serve" command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve starts the HTTP API for the geometry pipeline and design storage.
The store and cache backends come from the config file; by default designs
live in memory and geometry results are cached on disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close(context.Background())

			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			srv := &http.Server{
				Addr:    addr,
				Handler: api.New(st, runner, c.Logger),
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr, "store", c.cfg.Store.Backend)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			c.Logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// newStore picks the design store from config.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if c.cfg.Store.Backend == config.StoreBackendMongo {
		return store.NewMongoStore(ctx, c.cfg.Store.MongoURI, c.cfg.Store.Database, c.cfg.Store.Collection)
	}
	return store.NewMemoryStore(), nil
}
