package apperrors

import (
	"github.com/gin-gonic/gin"
)

// HandleError - отправка ошибки в формате ответа API.
// Каждая ошибка всегда завершается JSON-ответом: молчаливых путей нет.
func HandleError(c *gin.Context, err *AppError) {
	c.JSON(err.HTTPCode, gin.H{
		"message": err.Message,
		"success": false,
	})
}
