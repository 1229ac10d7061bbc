// preview serves the paint pipeline over HTTP: POST a scene document to
// /api/v1/render and get the image back.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rook-computer/paint/internal/app"
	"github.com/rook-computer/paint/internal/state"
	"github.com/rook-computer/paint/internal/web"
)

var (
	flagListen  string
	flagDev     bool
	flagMaxBody int64
	flagFontDir string
	flagDebug   bool
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Fprintln(os.Stderr, "server config error:", err)
		os.Exit(2)
	}

	rootCmd.Flags().StringVar(&flagListen, "listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	rootCmd.Flags().BoolVar(&flagDev, "dev", defaults.DevMode, "enable permissive CORS; also configurable via "+web.EnvDevMode)
	rootCmd.Flags().Int64Var(&flagMaxBody, "max-body", defaults.MaxBodyBytes, "largest accepted scene document in bytes; also configurable via "+web.EnvMaxBody)
	rootCmd.Flags().StringVar(&flagFontDir, "font-dir", defaults.FontDir, "directory of font files documents may name; empty refuses font files; also configurable via "+web.EnvFontDir)
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render scene documents over HTTP",
	Long: `preview runs an HTTP server around the paint pipeline.

Endpoints:
  POST /api/v1/render?format=png|tiff|bmp|pdf   render a JSON or YAML scene
  POST /api/v1/check                           list dropped figures as JSON
  GET  /api/v1/status                          last render summary

Examples:
  preview --listen :9000
  curl --data-binary @scene.json localhost:8080/api/v1/render > scene.png`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPreview,
}

func runPreview(_ *cobra.Command, _ []string) error {
	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := app.NewLogger(os.Stderr, flagDebug)
	cfg := web.ServerConfig{ListenAddr: flagListen, DevMode: flagDev, MaxBodyBytes: flagMaxBody, FontDir: flagFontDir}
	a := app.New(state.NewStore())
	a.Logger = logger
	a.Fonts = cfg.FontAccess()

	server := web.NewHTTPServer(cfg)
	server.Logger = logger
	server.Handler = web.NewDefaultMux(web.APIV1Config{
		Render:       a.Render,
		Status:       a.Store.Snapshot,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       logger,
	})

	if err := server.Start(processCtx); err != nil {
		return fmt.Errorf("server start: %w", err)
	}
	logger.Infof("preview", "listening on %s, dev=%v", server.Addr, flagDev)
	logger.Infof("preview", "API: http://%s/api/v1/", displayAddr(server.Addr))

	<-processCtx.Done()
	return server.Stop()
}

// displayAddr turns a wildcard listen address into something clickable.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if len(addr) > 4 && addr[:4] == "[::]" {
		return "127.0.0.1" + addr[4:]
	}
	return addr
}
