package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alehua/zerosum/internal/config"
	"github.com/alehua/zerosum/internal/ioc"
	"github.com/alehua/zerosum/internal/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.Path())
	if err != nil {
		panic(err)
	}
	l, err := ioc.InitLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	db, err := ioc.InitDB(cfg.DSN, l)
	if err != nil {
		panic(err)
	}

	reg := prometheus.NewRegistry()
	sche, err := ioc.InitScheduler(ctx, cfg, l, db, reg)
	if err != nil {
		panic(err)
	}

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if er := srv.ListenAndServe(); er != nil && !errors.Is(er, http.ErrServerClosed) {
				l.Error("metrics 服务异常退出", logger.Error(er))
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if err = sche.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		l.Error("调度器退出", logger.Error(err))
	}
	l.Info("调度器已停止")
}
