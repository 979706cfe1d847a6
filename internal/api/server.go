package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/clubevents-api/docs"
	v1 "github.com/vietanh2810/clubevents-api/internal/api/handler/v1"
	"github.com/vietanh2810/clubevents-api/internal/api/middleware"
	"github.com/vietanh2810/clubevents-api/internal/audit"
	"github.com/vietanh2810/clubevents-api/internal/config"
	"github.com/vietanh2810/clubevents-api/internal/repository"
	"github.com/vietanh2810/clubevents-api/internal/service"
	"github.com/vietanh2810/clubevents-api/internal/settings"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, params *settings.Params) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	store := newStoreAdapter(repository.NewStore(db))
	auditReg := initAuditRegistry()

	eventHandler := initEventHandler(store, params, auditReg)
	catalogHandler := initCatalogHandler(store)
	degreeHandler := initDegreeHandler(store)
	statisticsHandler := initStatisticsHandler(store, params)
	s.MountHandlers(eventHandler, catalogHandler, degreeHandler, statisticsHandler)

	return s
}

func initAuditRegistry() *audit.Registry {
	reg := audit.NewRegistry()
	reg.Register("event", "date", "end_date", "comment", "status", "type")
	reg.Register("organizer", "is_responsible")
	reg.Register("participant", "result_degree_id", "result_sub_degree_id", "comment")

	return reg
}

func initEventHandler(store storeAdapter, params *settings.Params, auditReg *audit.Registry) *v1.EventHandler {
	svc := service.NewEventService(store, params, auditReg)
	handler := v1.NewEventHandler(svc)

	return handler
}

func initCatalogHandler(store storeAdapter) *v1.CatalogHandler {
	svc := service.NewCatalogService(store)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func initDegreeHandler(store storeAdapter) *v1.DegreeHandler {
	svc := service.NewDegreeService(store)
	handler := v1.NewDegreeHandler(svc)

	return handler
}

func initStatisticsHandler(store storeAdapter, params *settings.Params) *v1.StatisticsHandler {
	svc := service.NewStatisticsService(store, params)
	handler := v1.NewStatisticsHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	eventHandler *v1.EventHandler,
	catalogHandler *v1.CatalogHandler,
	degreeHandler *v1.DegreeHandler,
	statisticsHandler *v1.StatisticsHandler,
) {
	const basePath = "/api/v1"

	root := s.Router.Group(basePath)
	{
		root.GET("/", v1.HandleHealthcheck)
	}

	events := s.Router.Group(basePath)
	{
		events.POST("/events", eventHandler.HandleCreateEvent)
		events.GET("/events", eventHandler.HandleGetEvents)
		events.GET("/events/:eventID", eventHandler.HandleGetEvent)
		events.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		events.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		events.GET("/events/:eventID/check-validity", eventHandler.HandleCheckValidity)
		events.POST("/events/:eventID/validate", eventHandler.HandleValidateEvent)

		events.POST("/events/:eventID/organizers", eventHandler.HandleAddOrganizer)
		events.DELETE("/events/:eventID/organizers/:organizerID", eventHandler.HandleRemoveOrganizer)
		events.PUT("/events/:eventID/organizers/:organizerID/responsible", eventHandler.HandleSetResponsible)

		events.POST("/events/:eventID/participants", eventHandler.HandleAddParticipant)
		events.PUT("/events/:eventID/participants/:participantID", eventHandler.HandleUpdateParticipant)
		events.DELETE("/events/:eventID/participants/:participantID", eventHandler.HandleRemoveParticipant)
	}

	catalog := s.Router.Group(basePath)
	{
		catalog.POST("/degree-levels", catalogHandler.HandleCreateDegreeLevel)
		catalog.GET("/degree-levels", catalogHandler.HandleGetDegreeLevels)
		catalog.PUT("/degree-levels/:degreeLevelID", catalogHandler.HandleUpdateDegreeLevel)
		catalog.DELETE("/degree-levels/:degreeLevelID", catalogHandler.HandleDeleteDegreeLevel)

		catalog.POST("/sub-degree-levels", catalogHandler.HandleCreateSubDegreeLevel)
		catalog.GET("/sub-degree-levels", catalogHandler.HandleGetSubDegreeLevels)
		catalog.PUT("/sub-degree-levels/:subDegreeLevelID", catalogHandler.HandleUpdateSubDegreeLevel)
		catalog.DELETE("/sub-degree-levels/:subDegreeLevelID", catalogHandler.HandleDeleteSubDegreeLevel)
	}

	degrees := s.Router.Group(basePath)
	{
		degrees.GET("/members/:memberID/degrees", degreeHandler.HandleGetMemberDegrees)
		degrees.DELETE("/degree-records/:recordID", degreeHandler.HandleDeleteDegreeRecord)

		degrees.GET("/statistics", statisticsHandler.HandleGetStatistics)
	}

	docs.SwaggerInfo.BasePath = basePath
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
