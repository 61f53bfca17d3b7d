package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"today-knowledge/cmd/internal/trace"
	"today-knowledge/cmd/server/handlers"
	"today-knowledge/cmd/server/middleware"
	"today-knowledge/cmd/server/services"
	_ "today-knowledge/docs"
)

// New 는 지식 생성 API 엔진을 CORS 핸들러로 감싸 반환한다.
// 위젯이 브라우저에서 호출하는 경우를 위해 허용 origin 은 설정에서 받는다.
func New(knowledgeSvc *services.KnowledgeService, allowedOrigins []string) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	r.GET("/health", handlers.HealthHandler())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	register := handlers.RegisterKnowledgeHandler(knowledgeSvc)
	r.POST("/register", register)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/knowledge", register)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", trace.HeaderRequestID, trace.HeaderSpanID},
		ExposedHeaders: []string{trace.HeaderRequestID, trace.HeaderSpanID},
	})
	return c.Handler(r)
}
