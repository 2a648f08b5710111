package routers

import (
	"github.com/GrainArc/InfraoMap/views"
	"github.com/gin-gonic/gin"
)

func ExchangeRouters(r *gin.Engine) {
	UserController := &views.UserController{}
	exchangeRouter := r.Group("/exchange")
	{
		exchangeRouter.POST("/ImportXML", UserController.ImportXML)
		exchangeRouter.POST("/ExportXML", UserController.ExportXML)
		exchangeRouter.GET("/GetExchangeRecords", UserController.GetExchangeRecords)
	}
}
