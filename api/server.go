package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/katatrina/momo-gateway/internal/momo"
	"github.com/katatrina/momo-gateway/internal/util"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	router      *gin.Engine
	config      *util.Config
	momoService *momo.MomoService
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config *util.Config, momoService *momo.MomoService) *Server {
	server := &Server{
		config:      config,
		momoService: momoService,
	}
	
	server.setupRouter()
	return server
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	// MoMo gửi transId dạng số lớn, không để decode thành float64
	binding.EnableDecoderUseNumber = true
	
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))
	
	v1 := router.Group("/v1")
	
	momoGroup := v1.Group("/momo")
	{
		// Storefront tạo thanh toán, trình duyệt được chuyển hướng sang trang MoMo
		momoGroup.POST("/payments", server.createMomoPayment)
		
		// MoMo chuyển hướng trình duyệt về sau khi thanh toán
		momoGroup.GET("/return", server.handleMomoReturn)
		
		// MoMo gọi server-to-server để thông báo kết quả
		momoGroup.POST("/notify", server.handleMomoNotify)
	}
	
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	
	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
