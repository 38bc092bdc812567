package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shouni/vision-board-kit/internal/config"
	"github.com/shouni/vision-board-kit/internal/server"
	"github.com/shouni/vision-board-kit/pkg/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP/WebSocket API を起動",
	Long: `セッション単位でフォーム編集・生成・履歴・画像編集を行う API を起動します。
セッションはメモリ上にのみ保持され、再起動で消えます。

Example:
  VISION_API_KEY=... visionboard serve --addr :8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "待ち受けアドレス (既定: :8080)")
	_ = viper.BindPFlag(config.KeyListenAddr, serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	api, err := server.New(gen, gen, newLoader(cfg, false),
		[]server.Option{server.WithDefaultLanguage(cfg.DefaultLanguage)},
		session.WithErrorDisplayDuration(cfg.ErrorDisplayDuration),
	)
	if err != nil {
		return err
	}
	defer api.Close()

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.InfoContext(gctx, "サーバーを起動しました", "addr", cfg.ListenAddr, "image_model", cfg.ImageModel)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		slog.InfoContext(shutdownCtx, "サーバーを停止しています")
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
