package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kleverretail/retail-cloud/docs"
	v1 "github.com/kleverretail/retail-cloud/internal/api/handler/v1"
	"github.com/kleverretail/retail-cloud/internal/api/middleware"
	"github.com/kleverretail/retail-cloud/internal/config"
	"github.com/kleverretail/retail-cloud/internal/repository"
	"github.com/kleverretail/retail-cloud/internal/repository/dao"
	"github.com/kleverretail/retail-cloud/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Feed   *v1.FeedHub
}

type handlers struct {
	pos       *v1.POSHandler
	catalog   *v1.CatalogHandler
	staff     *v1.StaffHandler
	orders    *v1.OrderHandler
	dashboard *v1.DashboardHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Feed:   v1.NewFeedHub(conf.API.AllowedCORSDomains),
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db))

	return s
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	staffRepo := repository.NewStaffRepository(dao.NewStaffDAO(db))
	orderRepo := repository.NewOrderRepository(dao.NewOrderDAO(db))

	catalogSvc := service.NewCatalogService(catalogRepo)
	orderSvc := service.NewOrderService(orderRepo, catalogRepo, s.Config.Orders, s.Feed)

	return handlers{
		pos:       v1.NewPOSHandler(catalogSvc, orderSvc),
		catalog:   v1.NewCatalogHandler(catalogSvc),
		staff:     v1.NewStaffHandler(service.NewStaffService(staffRepo)),
		orders:    v1.NewOrderHandler(orderSvc),
		dashboard: v1.NewDashboardHandler(service.NewDashboardService(catalogRepo, staffRepo, orderRepo)),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	// Routes used by the POS client.
	pos := s.Router.Group("/api")
	{
		pos.GET("/stores", h.pos.HandleListStores)
		pos.GET("/items/:store_code", h.pos.HandleListItems)
		pos.POST("/orders", h.pos.HandleCreateOrder)
	}

	api := s.Router.Group(basePath)
	{
		api.GET("/dashboard", h.dashboard.HandleGetDashboard)

		api.GET("/stores", h.catalog.HandleListStores)
		api.POST("/stores", h.catalog.HandleCreateStore)
		api.GET("/stores/:storeCode", h.catalog.HandleGetStore)
		api.POST("/stores/:storeCode/items", h.catalog.HandleCreateItem)
		api.GET("/items", h.catalog.HandleListItems)

		api.GET("/staff", h.staff.HandleListStaff)
		api.POST("/staff", h.staff.HandleCreateStaff)
		api.GET("/staff/:username", h.staff.HandleGetStaff)

		api.GET("/orders", h.orders.HandleListOrders)
		api.POST("/orders", h.orders.HandleCreateOrder)
		api.GET("/orders/feed", s.Feed.HandleWebSocket)
		api.GET("/orders/:orderID", h.orders.HandleGetOrder)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "kleverRetail Cloud API"
	docs.SwaggerInfo.Description = "Back-office and POS API for kleverRetail stores."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	feedCtx, stopFeed := context.WithCancel(ctx)
	defer stopFeed()
	go s.Feed.Run(feedCtx)

	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("srv.ListenAndServe -> %w", err)
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown -> %w", err)
	}

	return nil
}
