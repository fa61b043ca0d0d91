// Package logger はlogrusのロガーを設定から作る。
package logger

import (
	"io"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// echo.Contextにリクエスト単位のEntryを入れるキー
const CtxLogKey = "log_entry"

// Newはprodならjson、それ以外はtextで出力するロガーを返す。
// levelが読めない場合はinfo。
func New(level string, prod bool) *logrus.Logger {
	return NewWithOutput(os.Stdout, level, prod)
}

func NewWithOutput(out io.Writer, level string, prod bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if prod {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// FromContextはミドルウェアが入れたEntryを返す。無ければbaseから作る
func FromContext(c echo.Context, base logrus.FieldLogger) logrus.FieldLogger {
	if c != nil {
		if e, ok := c.Get(CtxLogKey).(*logrus.Entry); ok && e != nil {
			return e
		}
	}
	return base
}
