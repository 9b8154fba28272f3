package httpserver

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pasteleria-mil-sabores/internal/domain"
	ordersvc "pasteleria-mil-sabores/internal/service/order"
)

func checkoutHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CheckoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		order, err := svc.CreateOrder(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func listOrdersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
	}
}

func latestOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Latest(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func getOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.GetByNumber(c.Request.Context(), c.Param("number"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// streamLatestOrderHandler serves the live order-progress view: the current
// order immediately, then every subsequent change, as server-sent events.
func streamLatestOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		updates := svc.Watch(ctx)

		c.Header("Cache-Control", "no-cache")

		if current, err := svc.Latest(ctx); err == nil {
			c.SSEvent("order", current)
			c.Writer.Flush()
		}

		c.Stream(func(w io.Writer) bool {
			select {
			case order, ok := <-updates:
				if !ok {
					return false
				}
				c.SSEvent("order", order)
				return true
			case <-ctx.Done():
				return false
			}
		})
	}
}
