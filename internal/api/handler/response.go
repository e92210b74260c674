package handler

import "github.com/labstack/echo/v4"

// dataResponse is the success envelope shared by all CRUD endpoints.
type dataResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, dataResponse{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, msg string) error {
	return c.JSON(status, dataResponse{Success: true, Message: msg})
}
