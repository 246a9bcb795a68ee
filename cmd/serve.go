package cmd

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

	"github.com/ziadkadry99/portfoliai/internal/activity"
	"github.com/ziadkadry99/portfoliai/internal/contact"
	"github.com/ziadkadry99/portfoliai/internal/server"
	"github.com/ziadkadry99/portfoliai/internal/shell"
	"github.com/ziadkadry99/portfoliai/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio editor with live preview",
	Long:  `Starts the HTTP server hosting the browser editor, its JSON API, the websocket live preview, the activity log and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(activity.ActorUser, false)
		if err != nil {
			return err
		}
		defer sess.Close()

		sh, err := sess.newShell()
		if err != nil {
			return fmt.Errorf("creating shell: %w", err)
		}

		addr := sess.cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		// Enrichment requests block until the model answers, so the request
		// timeout has to outlast the enrichment timeout.
		timeout := server.DefaultRequestTimeout
		if t := sess.cfg.EnrichTimeoutDuration() + 15*time.Second; t > timeout {
			timeout = t
		}

		srv := server.New(server.Config{
			Addr:           addr,
			AllowedOrigins: sess.cfg.Server.Origins(),
			RequestTimeout: timeout,
		}, sess.db, sess.logger)

		registerAllRoutes(srv, sess, sh)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			sess.logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		sess.logger.Info("portfoliai starting",
			"version", Version,
			"editor", "http://"+addr+"/",
			"provider", sess.cfg.Provider,
			"model", sess.cfg.Model,
			"contact", sess.cfg.Contact.Delivery,
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// registerAllRoutes wires up the editor and diagnostics routes.
func registerAllRoutes(srv *server.Server, sess *session, sh *shell.Shell) {
	r := srv.Router()

	// Editor, preview and export
	ed := web.New(sh,
		web.WithMaxImageBytes(sess.cfg.MaxImageBytes),
		web.WithRecorder(sess.recorder),
		web.WithLogger(sess.logger),
	)
	ed.RegisterRoutes(r)

	// Activity log
	activity.RegisterRoutes(r, sess.activity)

	// Contact inbox
	if sess.cfg.Contact.Delivery == contact.DeliveryInbox {
		contact.RegisterRoutes(r, sess.inbox)
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
