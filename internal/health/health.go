package health

import (
	"net/http"

	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/logger"

	"github.com/gin-gonic/gin"
)

// InitRoutes регистрирует endpoint живости для health check хостинга.
// Работает независимо от цикла получения обновлений Telegram.
func InitRoutes(app *gin.Engine) {
	logger.Info("Init health endpoint...")

	app.GET("/health", Health)

	app.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
