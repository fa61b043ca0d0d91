package handler

import (
	"net/http"

	"shoppingpaglu/internal/logger"
	"shoppingpaglu/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// usecaseのHTTPErrorをStatus + Messageにする。原因はログにだけ出す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	log := logger.FromContext(c, logrus.StandardLogger())

	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			log.WithError(err).Error("request failed")
		}
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}

	//500
	log.WithError(err).Error("unexpected error")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
}
