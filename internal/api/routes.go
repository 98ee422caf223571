package api

import (
	"net/http" // HTTP methods and status codes

	"github.com/mrseeker53/swaplap-server/internal/domain"     // Importing domain models
	"github.com/mrseeker53/swaplap-server/internal/middleware" // Verification and admin gates

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Gate is the auth requirement attached to a route. Making it an
// explicit flag in the table keeps the authorization surface auditable
// in one place.
type Gate int

// Gate levels
const (
	GateNone  Gate = iota // Public route
	GateToken             // Requires a verified bearer token
	GateAdmin             // Requires a verified token and a stored admin role
)

// Route is one row of the routing table
type Route struct {
	Method  string          // HTTP method
	Path    string          // Gin route pattern
	Gate    Gate            // Auth requirement
	Handler gin.HandlerFunc // Terminal handler
}

// Stores bundles the collection views the routes depend on
type Stores struct {
	Users      UserStore    // users collection
	Banners    DocStore     // banners collection
	Categories DocStore     // categories collection
	Products   ProductStore // products collection
	Bookings   DocStore     // bookings collection
}

// Routes builds the full routing table
func Routes(s Stores, rdb *redis.Client, jwtSecret string) []Route {
	return []Route{
		{http.MethodGet, "/", GateNone, LivenessHandler()},
		{http.MethodGet, "/jwt", GateNone, TokenHandler(s.Users, jwtSecret)},
		{http.MethodGet, "/banner", GateNone, ListBannersHandler(s.Banners, rdb)},
		{http.MethodGet, "/category", GateNone, ListCategoriesHandler(s.Categories, rdb)},
		{http.MethodGet, "/category/:id", GateToken, ProductsByCategoryHandler(s.Products)},
		{http.MethodGet, "/users", GateNone, ListUsersHandler(s.Users)},
		{http.MethodGet, "/users/buyer/:email", GateNone, RoleCheckHandler(s.Users, domain.RoleBuyer, "isBuyer")},
		{http.MethodGet, "/users/seller/:email", GateNone, RoleCheckHandler(s.Users, domain.RoleSeller, "isSeller")},
		{http.MethodGet, "/users/admin/:email", GateNone, RoleCheckHandler(s.Users, domain.RoleAdmin, "isAdmin")},
		{http.MethodGet, "/dashboard/mybuyers", GateNone, ListBookingsHandler(s.Bookings)},
		{http.MethodGet, "/dashboard/myproducts", GateNone, ListMyProductsHandler(s.Products)},
		{http.MethodGet, "/dashboard/allbuyers", GateNone, ListBuyersHandler(s.Users)},
		{http.MethodGet, "/dashboard/allsellers", GateNone, ListSellersHandler(s.Users)},
		{http.MethodPost, "/users", GateNone, CreateUserHandler(s.Users)},
		{http.MethodPost, "/bookings", GateNone, CreateBookingHandler(s.Bookings)},
		{http.MethodPost, "/dashboard/myproducts", GateNone, CreateProductHandler(s.Products)},
		{http.MethodPut, "/users/admin/:id", GateAdmin, PromoteAdminHandler(s.Users)},
	}
}

// Register attaches the routing table to the router, wrapping each route
// in the middleware its gate flag demands. CORS runs globally: the
// client application lives on another origin, and the promotion PUT
// needs its preflight answered before the gates ever see a request.
func Register(r *gin.Engine, routes []Route, users middleware.RoleLookup, jwtSecret string) {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true           // Any client origin may call the API
	corsCfg.AddAllowHeaders("Authorization") // Bearer tokens ride a non-safelisted header
	r.Use(cors.New(corsCfg))                 // Apply CORS before any route

	for _, rt := range routes {
		var chain []gin.HandlerFunc
		switch rt.Gate {
		case GateToken:
			chain = append(chain, middleware.JWTAuthMiddleware(jwtSecret)) // Verification gate only
		case GateAdmin:
			// Verification gate, then the stored-role check
			chain = append(chain, middleware.JWTAuthMiddleware(jwtSecret), middleware.AdminOnlyMiddleware(users))
		}
		chain = append(chain, rt.Handler)
		r.Handle(rt.Method, rt.Path, chain...)
	}
}

// LivenessHandler answers the root liveness probe
func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Swaplap server is running") // Plain-text liveness response
	}
}
