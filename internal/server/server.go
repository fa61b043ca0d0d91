package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"shoppingpaglu/internal/handler"
	"shoppingpaglu/internal/metrics"
	"shoppingpaglu/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
}

type Options struct {
	Log         *logrus.Logger
	Metrics     *metrics.Metrics
	TokenParser middleware.TokenParser
	StaticDir   string // 空、または存在しなければ静的配信しない
}

// New はミドルウェアとルートを組み立てたechoを返す。
func New(h Handlers, opt Options) *echo.Echo {
	if opt.Log == nil {
		opt.Log = logrus.StandardLogger()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if opt.Metrics != nil {
		e.Use(opt.Metrics.Middleware())
	}
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(opt.Log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	if opt.StaticDir != "" {
		if info, err := os.Stat(opt.StaticDir); err == nil && info.IsDir() {
			e.Use(echomw.Static(opt.StaticDir))
		} else {
			opt.Log.WithField("dir", opt.StaticDir).Debug("static dir not found, skipping")
		}
	}

	RegisterRoutes(e, h, opt)
	return e
}

// Start はctxがキャンセルされるまで待ち受け、その後graceful shutdownする。
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
