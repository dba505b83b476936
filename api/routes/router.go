package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/techstore/storefront-backend/api/controllers"
	"github.com/techstore/storefront-backend/api/middleware"
	"github.com/techstore/storefront-backend/internal/accounts"
	"github.com/techstore/storefront-backend/internal/admin"
	"github.com/techstore/storefront-backend/internal/blog"
	"github.com/techstore/storefront-backend/internal/cart"
	"github.com/techstore/storefront-backend/internal/catalog"
	"github.com/techstore/storefront-backend/internal/checkout"
	"github.com/techstore/storefront-backend/internal/contact"
	"github.com/techstore/storefront-backend/internal/newsletter"
	"github.com/techstore/storefront-backend/internal/orders"
	"github.com/techstore/storefront-backend/internal/reviews"
	"github.com/techstore/storefront-backend/pkg/auth/session"
	"github.com/techstore/storefront-backend/pkg/config"
	"github.com/techstore/storefront-backend/pkg/db"
	"github.com/techstore/storefront-backend/pkg/logger"
	"github.com/techstore/storefront-backend/pkg/metrics"
	"github.com/techstore/storefront-backend/pkg/redis"
)

type Dependencies struct {
	Config *config.Config
	Logger *logger.Logger

	DB       *db.Client
	Redis    *redis.Client
	Sessions *session.Manager

	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	Accounts   accounts.Service
	Catalog    catalog.Service
	Cart       cart.Service
	Checkout   checkout.Service
	Orders     orders.Service
	Reviews    reviews.Service
	Newsletter newsletter.Service
	Contact    contact.Service
	Blog       blog.Service
	Admin      admin.Service
}

func NewRouter(deps Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.Metrics(deps.HTTPMetrics))
	r.Use(middleware.CORS(nil))

	authenticate := middleware.Authenticate(deps.Config.Session, deps.Sessions, deps.Logger)

	r.Get("/health/live", controllers.Live())
	r.Get("/health/ready", controllers.Ready(deps.DB, deps.Redis))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public storefront.
		r.Get("/products", controllers.ListProducts(deps.Catalog))
		r.Get("/products/{productID}", controllers.GetProduct(deps.Catalog))
		r.Get("/featured", controllers.FeaturedProducts(deps.Catalog))
		r.Get("/categories", controllers.ListCategories(deps.Catalog))
		r.Get("/search", controllers.Search(deps.Catalog))

		r.Get("/blog", controllers.ListBlogPosts(deps.Blog))
		r.Get("/blog/{postID}", controllers.GetBlogPost(deps.Blog))

		r.Post("/newsletter", controllers.SubscribeNewsletter(deps.Newsletter))
		r.Get("/newsletter/preferences", controllers.NewsletterPreferences(deps.Newsletter))
		r.Post("/contact", controllers.SubmitContact(deps.Contact))

		r.Post("/auth/register", controllers.Register(deps.Accounts))
		r.Post("/auth/login", controllers.Login(deps.Accounts, deps.Sessions, deps.Config.Session, deps.Logger))

		// Session-holders only.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/auth/logout", controllers.Logout(deps.Sessions, deps.Config.Session, deps.Logger))

			r.Get("/profile", controllers.GetProfile(deps.Accounts))
			r.Patch("/profile", controllers.UpdateProfile(deps.Accounts))

			r.Get("/cart", controllers.GetCart(deps.Cart))
			r.Post("/cart/items", controllers.AddToCart(deps.Cart))
			r.Post("/checkout", controllers.Checkout(deps.Checkout, deps.Cart, deps.Logger))

			r.Get("/orders", controllers.ListOrders(deps.Orders))
			r.Get("/orders/{orderID}", controllers.GetOrder(deps.Orders))

			r.Post("/reviews", controllers.CreateReview(deps.Reviews))
		})
	})

	// Back office.
	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.RequireAdmin)

		r.Get("/dashboard", controllers.AdminDashboard(deps.Admin))

		r.Get("/orders", controllers.AdminListOrders(deps.Orders))
		r.Post("/orders/{orderID}/status", controllers.AdminUpdateOrderStatus(deps.Orders))

		r.Get("/users", controllers.AdminListUsers(deps.Accounts))
		r.Get("/reviews", controllers.AdminListReviews(deps.Reviews))

		r.Get("/products", controllers.ListProducts(deps.Catalog))
		r.Post("/products", controllers.AdminCreateProduct(deps.Catalog))
		r.Post("/categories", controllers.AdminCreateCategory(deps.Catalog))
		r.Get("/blog", controllers.ListBlogPosts(deps.Blog))
		r.Post("/blog", controllers.AdminCreateBlogPost(deps.Blog))

		r.Get("/newsletter/subscribers", controllers.AdminListSubscribers(deps.Newsletter))
		r.Get("/messages", controllers.AdminListMessages(deps.Contact))
		r.Get("/messages/{messageID}", controllers.AdminGetMessage(deps.Contact))
	})

	return r
}
