package http

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/dentalclinic-backend/docs"
	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/handlers/middleware"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/i18n"
)

// RouterConfig reúne o que o roteador precisa além dos handlers
type RouterConfig struct {
	BaseURL            string
	AllowedOrigins     string
	MaxMultipartMemory int64
	Issuer             ports.TokenIssuer
	I18n               *i18n.Service
	Logger             ports.Logger
}

// Handlers agrupa os handlers HTTP da aplicação
type Handlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Catalog       *CatalogHandler
	Models        *ModelHandler
	Notifications *NotificationHandler
	ActivityLogs  *ActivityLogHandler
	Health        *HealthHandler
}

// NewRouter monta o gin.Engine com middlewares globais e todas as rotas
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	if cfg.MaxMultipartMemory > 0 {
		router.MaxMultipartMemory = cfg.MaxMultipartMemory
	}

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Logger),
		middleware.BaseURL(cfg.BaseURL),
		middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage(),
		middleware.CORS(cfg.AllowedOrigins),
	)

	authenticated := middleware.Authenticate(cfg.Issuer)
	adminOnly := []gin.HandlerFunc{authenticated, middleware.RequireRole(entities.RoleAdmin)}
	clinicalStaff := []gin.HandlerFunc{authenticated, middleware.RequireRole(entities.RoleAdmin, entities.RoleDentist)}

	router.GET("/health", h.Health.Health)

	docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.BaseURL, "https://"), "http://")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := router.Group("/auth")
	{
		auth.POST("/website/login", h.Auth.WebLogin)
		auth.POST("/app/login", h.Auth.AppLogin)
		auth.POST("/app/register", h.Auth.Register)
		auth.POST("/refresh-token", h.Auth.RefreshToken)
		auth.POST("/logout", h.Auth.Logout)
		auth.PATCH("/change-password", h.Auth.ChangePassword)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}

	users := router.Group("/users", adminOnly...)
	{
		users.GET("/all", h.Users.ListUsers)
		users.GET("/:id", h.Users.GetUser)
		users.POST("/add", h.Users.AddUser)
		users.PUT("/edit/:id", h.Users.EditUser)
		users.DELETE("/delete/:id", h.Users.DeleteUser)
	}

	catalog := router.Group("/services")
	{
		catalog.GET("", h.Catalog.ListServices)
		catalog.GET("/grouped", h.Catalog.GroupedServices)
		catalog.GET("/categories", h.Catalog.ListCategories)
		catalog.GET("/categories/:id", h.Catalog.GetCategory)
		catalog.GET("/:id", h.Catalog.GetService)

		admin := catalog.Group("", adminOnly...)
		admin.POST("", h.Catalog.CreateService)
		admin.PUT("/:id", h.Catalog.UpdateService)
		admin.DELETE("/:id", h.Catalog.DeleteService)
		admin.POST("/categories", h.Catalog.CreateCategory)
		admin.PUT("/categories/:id", h.Catalog.UpdateCategory)
		admin.DELETE("/categories/:id", h.Catalog.DeleteCategory)
	}

	buckets := router.Group("/buckets", clinicalStaff...)
	{
		buckets.POST("/upload/beforemodel", h.Models.UploadBeforeModel)
		buckets.GET("/model/:record_id", h.Models.GetModel)
	}

	notifications := router.Group("/notifications", authenticated)
	{
		notifications.GET("", h.Notifications.List)
		notifications.PATCH("/:id/read", h.Notifications.MarkRead)
	}

	router.GET("/activity-logs", append(adminOnly, h.ActivityLogs.List)...)

	return router
}

// useJSONFieldNames faz o validator reportar os campos pelo nome do JSON (ou do form)
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
}
