package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pasteleria-mil-sabores/internal/domain"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	Items      []domain.CartItem `json:"items"`
	TotalCents int64             `json:"totalCents"`
	ItemCount  int               `json:"itemCount"`
}

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := cartSnapshot(c, svc)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func addCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		qty := req.Quantity
		if qty == 0 {
			qty = 1
		}
		if err := svc.AddItem(c.Request.Context(), req.ProductID, qty); err != nil {
			respondError(c, err)
			return
		}
		resp, err := cartSnapshot(c, svc)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func removeCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveItem(c.Request.Context(), c.Param("productId")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func cartSnapshot(c *gin.Context, svc cartService) (cartResponse, error) {
	ctx := c.Request.Context()
	items, err := svc.Items(ctx)
	if err != nil {
		return cartResponse{}, err
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:      items,
		TotalCents: domain.TotalCents(items),
		ItemCount:  domain.ItemCount(items),
	}, nil
}
