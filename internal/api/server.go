package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	v1 "github.com/episurv/reportcase-api/internal/api/handler/v1"
	"github.com/episurv/reportcase-api/internal/api/middleware"
	"github.com/episurv/reportcase-api/internal/config"
	"github.com/episurv/reportcase-api/internal/repository"
	"github.com/episurv/reportcase-api/internal/repository/dao"
	"github.com/episurv/reportcase-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	db *gorm.DB
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)

	s := &Server{
		Config: conf,
		Router: gin.New(),
		db:     db,
	}

	s.MountMiddlewares()
	s.MountHandlers()

	return s
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(cors.Default())
}

func (s *Server) MountHandlers() {
	authHandler := s.initAuthHandler()
	userHandler := s.initUserHandler()
	diseaseHandler := s.initDiseaseHandler()
	localizationHandler := s.initLocalizationHandler()
	reportcaseHandler := s.initReportcaseHandler()

	apiGroup := s.Router.Group("/api")
	{
		apiGroup.POST("/auth/signup", authHandler.HandleSignup)
		apiGroup.POST("/auth/login", authHandler.HandleLogin)

		apiGroup.GET("/documentation/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

		authed := apiGroup.Group("")
		authed.Use(middleware.Authenticate(s.Config.API.JWTSigningKey))
		{
			authed.GET("/user", userHandler.HandleGetCurrentUser)

			authed.GET("/diseases", diseaseHandler.HandleListDiseases)
			authed.POST("/diseases", diseaseHandler.HandleCreateDisease)
			authed.GET("/diseases/:id", diseaseHandler.HandleGetDisease)
			authed.PUT("/diseases/:id", diseaseHandler.HandleUpdateDisease)
			authed.DELETE("/diseases/:id", diseaseHandler.HandleDeleteDisease)

			authed.GET("/localizations", localizationHandler.HandleListLocalizations)
			authed.POST("/localizations", localizationHandler.HandleCreateLocalization)
			authed.GET("/localizations/:id", localizationHandler.HandleGetLocalization)
			authed.PUT("/localizations/:id", localizationHandler.HandleUpdateLocalization)
			authed.DELETE("/localizations/:id", localizationHandler.HandleDeleteLocalization)

			authed.GET("/reportcases", reportcaseHandler.HandleListReportcases)
			authed.POST("/reportcases", reportcaseHandler.HandleCreateReportcase)
			authed.GET("/reportcases/:id", reportcaseHandler.HandleGetReportcase)
			authed.PUT("/reportcases/:id", reportcaseHandler.HandleUpdateReportcase)
			authed.DELETE("/reportcases/:id", reportcaseHandler.HandleDeleteReportcase)
		}
	}
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	userDAO := dao.NewUserDAO(s.db)
	userRepo := repository.NewUserRepository(userDAO)
	authSvc := service.NewAuthService(userRepo)

	return v1.NewAuthHandler(s.Config.API, authSvc)
}

func (s *Server) initUserHandler() *v1.UserHandler {
	userDAO := dao.NewUserDAO(s.db)
	userRepo := repository.NewUserRepository(userDAO)
	userSvc := service.NewUserService(userRepo)

	return v1.NewUserHandler(userSvc)
}

func (s *Server) initDiseaseHandler() *v1.DiseaseHandler {
	diseaseDAO := dao.NewDiseaseDAO(s.db)
	diseaseRepo := repository.NewDiseaseRepository(diseaseDAO)
	diseaseSvc := service.NewDiseaseService(diseaseRepo)

	return v1.NewDiseaseHandler(diseaseSvc)
}

func (s *Server) initLocalizationHandler() *v1.LocalizationHandler {
	localizationDAO := dao.NewLocalizationDAO(s.db)
	localizationRepo := repository.NewLocalizationRepository(localizationDAO)
	localizationSvc := service.NewLocalizationService(localizationRepo)

	return v1.NewLocalizationHandler(localizationSvc)
}

func (s *Server) initReportcaseHandler() *v1.ReportcaseHandler {
	reportcaseDAO := dao.NewReportcaseDAO(s.db)
	reportcaseRepo := repository.NewReportcaseRepository(reportcaseDAO)
	reportcaseSvc := service.NewReportcaseService(reportcaseRepo)

	return v1.NewReportcaseHandler(reportcaseSvc)
}
