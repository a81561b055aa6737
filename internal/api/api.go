package api

import (
	"net/http"

	"subscription-items/internal/auth"
	itemsHandler "subscription-items/internal/money/subscriptionitems/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router        *gin.RouterGroup
	authenticator *auth.Authenticator
	itemsHandler  itemsHandler.Handler
}

func New(router *gin.RouterGroup, authenticator *auth.Authenticator, itemsHandler itemsHandler.Handler) API {
	return API{
		router:        router,
		authenticator: authenticator,
		itemsHandler:  itemsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	itemsGroup := apiGroup.Group("/subscription-items", a.authenticator.Middleware)
	{
		itemsGroup.POST("", a.itemsHandler.HandleCreate)
		itemsGroup.GET("", a.itemsHandler.HandleList)
		itemsGroup.GET("/:id", a.itemsHandler.HandleGet)
		itemsGroup.POST("/:id", a.itemsHandler.HandleUpdate)
		itemsGroup.DELETE("/:id", a.itemsHandler.HandleDelete)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
