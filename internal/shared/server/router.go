package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/analyses"
	googleauth "jobmatch-backend/internal/auth"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/matches"
	"jobmatch-backend/internal/resumes"
	"jobmatch-backend/internal/shared/config"
	"jobmatch-backend/internal/shared/metrics"
	"jobmatch-backend/internal/shared/server/middleware"
	"jobmatch-backend/internal/shared/server/respond"
	"jobmatch-backend/internal/shared/storage/db"
	"jobmatch-backend/internal/shared/storage/object"
	localstore "jobmatch-backend/internal/shared/storage/object/local"
	s3store "jobmatch-backend/internal/shared/storage/object/s3"
	"jobmatch-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
	)

	store := buildStore(cfg)
	sqlDB := connectDB(cfg)

	var resumeRepo resumes.ResumesRepo
	var jobRepo jobs.JobsRepo
	var analysisRepo analyses.AnalysesRepo
	var matchRepo matches.MatchesRepo
	var userRepo users.Repo
	if sqlDB != nil {
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
		jobRepo = &jobs.PGRepo{DB: sqlDB}
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
		matchRepo = &matches.PGRepo{DB: sqlDB}
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
		matchRepo = matches.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	resumeSvc := &resumes.Service{Store: store, Repo: resumeRepo}
	jobSvc := &jobs.Service{Repo: jobRepo}
	analysisSvc := analyses.NewService(analysisRepo, resumeSvc, jobSvc)
	matchSvc := matches.NewService(matchRepo, resumeSvc, jobSvc)
	userSvc := users.NewService(userRepo)
	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL).
		WithUsers(userSvc)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"COMPUTE": {Rate: 2, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				p := c.Request.URL.Path
				if strings.HasSuffix(p, "/analyses") || strings.HasSuffix(p, "/matches") {
					return "COMPUTE"
				}
			}
			return ""
		},
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	googleAuthSvc.RegisterRoutes(api)
	registerMeRoutes(api)
	users.NewHandler(userSvc).RegisterRoutes(api)
	resumes.NewHandler(resumeSvc).RegisterRoutes(api)
	jobs.NewHandler(jobSvc).RegisterRoutes(api)
	analyses.NewHandler(analysisSvc).RegisterRoutes(api)
	matches.NewHandler(matchSvc).RegisterRoutes(api)

	return r
}

func buildStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

func connectDB(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(context.Background(), dbConn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		return nil
	}
	return dbConn
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
