package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"essentialfeed/backend/internal/logger"
	"essentialfeed/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type warmStartedResponse struct {
	Status string `json:"status"`
	Images int    `json:"images"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrImageDataNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "image data not found"})
	case errors.Is(err, service.ErrConnectivity):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "remote unreachable"})
	case errors.Is(err, service.ErrInvalidData):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "invalid remote data"})
	case errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, errorResponse{Error: "timeout"})
	case errors.Is(err, service.ErrCacheRead), errors.Is(err, service.ErrCacheWrite):
		logger.Error("cache failure", "module", "handler", "path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "cache unavailable"})
	default:
		logger.Error("request failed", "module", "handler", "path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
