package routes

import (
	"quoteforge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/upload", quoteHandler.UploadAndQuote)
		quotes.POST("/batch", quoteHandler.BatchQuotes)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PUT("/:quote_id/status", quoteHandler.UpdateStatus)

		quotes.POST("/:quote_id/payments", paymentHandler.CreatePaymentByQuoteID)
		quotes.GET("/:quote_id/payments", paymentHandler.GetPaymentByQuoteID)
	}
}
