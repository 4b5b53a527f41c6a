package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkovari/costline/internal/api"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the timeline feed and budget API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			h := api.NewHandler(app.Projects, app.Items, app.Schedule)
			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewRouter(h),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				fmt.Printf("Listening on %s\n", addr)
				errCh <- srv.ListenAndServe()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-stop:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr(), "Listen address")

	return cmd
}

func defaultAddr() string {
	if addr := os.Getenv("COSTLINE_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
