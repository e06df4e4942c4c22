package routes

import (
	"cobranza_campo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPagos       = "/pagos"
	PathSincronizar = "/sincronizar"
)

func addCobranzaRoutes(rg *gin.RouterGroup, pagoHandler *handlers.PendingPaymentHandler, syncHandler *handlers.SyncHandler) {
	pagos := rg.Group(PathPagos)
	{
		pagos.POST("", pagoHandler.CapturePayment)
		pagos.GET("", pagoHandler.ListPending)
		pagos.GET("/credito/:credito", pagoHandler.ListByCredit)
		pagos.GET("/credito/:credito/total", pagoHandler.TotalByCredit)
		pagos.DELETE("/:id", pagoHandler.DeletePayment)
		pagos.DELETE("", pagoHandler.DeleteAll)
	}

	sincronizar := rg.Group(PathSincronizar)
	{
		sincronizar.POST("", syncHandler.SyncPayments)
		sincronizar.POST("/resumen", syncHandler.SyncSummary)
	}
}
