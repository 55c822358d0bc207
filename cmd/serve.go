package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"timecard/config"
	"timecard/web"
)

var (
	servePort   int
	serveNoOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local upload page for timecard reports",
	Long: `Start a local HTTP server with a single upload form.

Uploading a spreadsheet shows the report table, the skipped cells and a CSV
download link. The same report is available as JSON on POST /api/report and
as a CSV or Excel attachment on POST /api/report/download?format=csv|excel.`,
	Example: `
  # Start local server on the configured port
  timecard serve

  # Custom port, keep the browser closed
  timecard serve --port 9090 --no-open
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		port := resolveServePort(servePort, cfg.Serve.Port)

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           web.NewServer(*cfg, logger),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		listenURL := fmt.Sprintf("http://localhost:%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", listenURL)
		logger.Info("server started", zap.Int("port", port), zap.Int("max_upload_mb", cfg.Serve.MaxUploadMB))
		if cfg.Serve.OpenBrowser && !serveNoOpen {
			if openErr := openURLInBrowser(listenURL); openErr != nil {
				logger.Warn("failed to open browser", zap.Error(openErr))
			}
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-sigCh:
			logger.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			err := <-errCh
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port for the local web server (default: serve.port from config)")
	serveCmd.Flags().BoolVar(&serveNoOpen, "no-open", false, "Do not open browser automatically")
}

// resolveServePort lets the flag win over the configured port.
func resolveServePort(flagPort, configPort int) int {
	if flagPort > 0 {
		return flagPort
	}
	return configPort
}

func openURLInBrowser(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.Command("xdg-open", rawURL)
	}
	return cmd.Start()
}
