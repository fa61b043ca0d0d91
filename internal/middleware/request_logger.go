package middleware

import (
	"time"

	"shoppingpaglu/internal/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// リクエストIDはuuid
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLogger はrequest_id付きのEntryをcontextに入れ、処理後に1行ログを出す。
// RequestIDより後に登録すること。
func RequestLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			rid := c.Response().Header().Get(echo.HeaderXRequestID)

			entry := log.WithField("request_id", rid)
			c.Set(logger.CtxLogKey, entry)

			err := next(c)
			if err != nil {
				//ステータスを確定させるため先にechoのエラーハンドラを通す
				c.Error(err)
			}

			req := c.Request()
			fields := logrus.Fields{
				"method":  req.Method,
				"path":    req.URL.Path,
				"status":  c.Response().Status,
				"latency": time.Since(start).String(),
				"ip":      c.RealIP(),
			}
			if err != nil {
				entry.WithFields(fields).WithError(err).Warn("request")
			} else {
				entry.WithFields(fields).Info("request")
			}
			return nil
		}
	}
}
