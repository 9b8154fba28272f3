package httpserver

import (
	"context"
	"database/sql"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pasteleria-mil-sabores/internal/domain"
	ordersvc "pasteleria-mil-sabores/internal/service/order"
	usersvc "pasteleria-mil-sabores/internal/service/user"
)

// Deps collects the services the router exposes. Handlers depend on the
// narrow interfaces below, not on concrete service types.
type Deps struct {
	CatalogSvc catalogService
	CartSvc    cartService
	OrderSvc   orderService
	UserSvc    userService
	Tracker    healthReporter
}

type catalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type cartService interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	AddItem(ctx context.Context, productID string, quantity int) error
	RemoveItem(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
	Total(ctx context.Context) (int64, error)
	ItemCount(ctx context.Context) (int, error)
	Watch(ctx context.Context) <-chan []domain.CartItem
}

type orderService interface {
	CreateOrder(ctx context.Context, in ordersvc.CheckoutInput) (*domain.Order, error)
	Latest(ctx context.Context) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Watch(ctx context.Context) <-chan domain.Order
}

type userService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
}

type healthReporter interface {
	Healthy() (bool, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *sql.DB, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, deps.Tracker))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))

		api.GET("/cart", getCartHandler(deps.CartSvc))
		api.POST("/cart/items", addCartItemHandler(deps.CartSvc))
		api.DELETE("/cart/items/:productId", removeCartItemHandler(deps.CartSvc))
		api.DELETE("/cart", clearCartHandler(deps.CartSvc))

		api.POST("/checkout", checkoutHandler(deps.OrderSvc))
		api.GET("/orders", listOrdersHandler(deps.OrderSvc))
		api.GET("/orders/latest", latestOrderHandler(deps.OrderSvc))
		api.GET("/orders/latest/events", streamLatestOrderHandler(deps.OrderSvc))
		api.GET("/orders/:number", getOrderHandler(deps.OrderSvc))

		api.POST("/auth/register", registerHandler(deps.UserSvc))
		api.POST("/auth/login", loginHandler(deps.UserSvc))
		api.POST("/auth/logout", logoutHandler(deps.UserSvc))
		api.GET("/me", meHandler(deps.UserSvc))
		api.PUT("/me", updateProfileHandler(deps.UserSvc))
	}

	return router
}
