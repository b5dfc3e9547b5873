package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"league/config"
	"league/docs"
	"league/internal/init/cache"
	"league/internal/init/database"
	s3init "league/internal/init/s3"

	"league/internal/modules/media"
	mediaDisk "league/internal/modules/media/repo/disk"
	mediaS3 "league/internal/modules/media/repo/s3"
	mediaUC "league/internal/modules/media/usecase"

	playerC "league/internal/modules/player/controller"
	playerRp "league/internal/modules/player/repo"
	playerCache "league/internal/modules/player/repo/cache"
	playerDb "league/internal/modules/player/repo/database"
	playerUC "league/internal/modules/player/usecase"

	teamC "league/internal/modules/team/controller"
	teamRp "league/internal/modules/team/repo"
	teamCache "league/internal/modules/team/repo/cache"
	teamDb "league/internal/modules/team/repo/database"
	teamUC "league/internal/modules/team/usecase"

	seriesC "league/internal/modules/series/controller"
	seriesRp "league/internal/modules/series/repo"
	seriesCache "league/internal/modules/series/repo/cache"
	seriesDb "league/internal/modules/series/repo/database"
	seriesUC "league/internal/modules/series/usecase"

	// User submodules
	adminC "league/internal/modules/user/admin/controller"
	adminRp "league/internal/modules/user/admin/repo"
	adminCache "league/internal/modules/user/admin/repo/cache"
	adminDb "league/internal/modules/user/admin/repo/database"
	adminUC "league/internal/modules/user/admin/usecase"

	authC "league/internal/modules/user/auth/controller"
	authRp "league/internal/modules/user/auth/repo"
	authDb "league/internal/modules/user/auth/repo/database"
	authUC "league/internal/modules/user/auth/usecase"

	"league/pkg/lib/TaskService"
	"league/pkg/lib/jwt"
	appMiddleware "league/pkg/middleware/jwt"
	"league/pkg/middleware/logger"
)

type App struct {
	Storage   *database.Storage
	Cache     *cache.Cache // nil, если redis не настроен
	Media     media.UseCase
	UploadDir string // пусто для s3
	Tokens    *jwt.Manager
	Router    chi.Router
	Log       *slog.Logger
	Cfg       *config.Config
	Cron      *cron.Cron
	TS        *TaskService.TaskService
	Sentry    bool
}

func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	storage, err := database.NewStorage(cfg.DbConfig, log)
	if err != nil {
		return nil, fmt.Errorf("db init failed: %w", err)
	}

	appCache, err := cache.NewCache(cfg.CacheConfig)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	if appCache == nil {
		log.Info("cache disabled")
	}

	var (
		mediaStorage media.Storage
		uploadDir    string
	)
	switch cfg.StorageConfig.Driver {
	case "s3":
		s3s, err := s3init.NewS3Storage(cfg.S3Config, log)
		if err != nil {
			return nil, fmt.Errorf("s3 init failed: %w", err)
		}
		mediaStorage = mediaS3.NewMediaS3(log, s3s)
	case "disk", "":
		disk, err := mediaDisk.NewDiskStorage(cfg.StorageConfig.UploadDir, cfg.HttpServerConfig.BaseURL, log)
		if err != nil {
			return nil, fmt.Errorf("upload dir init failed: %w", err)
		}
		mediaStorage = disk
		uploadDir = disk.Dir()
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageConfig.Driver)
	}
	mediaUseCase := mediaUC.NewMediaUseCase(mediaStorage, log, cfg.StorageConfig)

	sentryEnabled := false
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		env := cfg.SentryConfig.Environment
		if env == "" {
			env = cfg.Env
		}
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    cfg.SentryConfig.TracesSampleRate > 0,
			TracesSampleRate: cfg.SentryConfig.TracesSampleRate,
			Environment:      env,
		}); err != nil {
			log.Error("sentry init failed", "error", err)
		} else {
			sentryEnabled = true
		}
	}

	bgTaskService := TaskService.NewTaskService(storage.Db, mediaUseCase, cfg.JanitorConfig.GracePeriod, log)
	cronScheduler := cron.New()
	_, err = cronScheduler.AddFunc(cfg.JanitorConfig.Schedule, func() {
		bgTaskService.CleanOrphanImages()
	})
	if err != nil {
		return nil, fmt.Errorf("cron init failed: %w", err)
	}
	cronScheduler.Start()

	return &App{
		Storage:   storage,
		Cache:     appCache,
		Media:     mediaUseCase,
		UploadDir: uploadDir,
		Tokens:    jwt.NewManager(secret, cfg.JWTConfig.AccessExpire),
		Router:    chi.NewRouter(),
		Log:       log,
		Cfg:       cfg,
		Cron:      cronScheduler,
		TS:        bgTaskService,
		Sentry:    sentryEnabled,
	}, nil
}

func (app *App) Start() error {
	srv := &http.Server{
		Addr:         app.Cfg.HttpServerConfig.Address,
		Handler:      app.Router,
		ReadTimeout:  app.Cfg.HttpServerConfig.Timeout,
		WriteTimeout: app.Cfg.HttpServerConfig.Timeout,
		IdleTimeout:  app.Cfg.HttpServerConfig.IdleTimeout,
	}

	protocol := "http"
	if app.Cfg.HttpServerConfig.TLS.Enabled {
		protocol = "https"
	}
	swaggerHost := app.Cfg.HttpServerConfig.Address
	if strings.HasPrefix(swaggerHost, "0.0.0.0:") {
		swaggerHost = "localhost" + swaggerHost[len("0.0.0.0"):]
	} else if strings.HasPrefix(swaggerHost, ":") {
		swaggerHost = "localhost" + swaggerHost
	}
	docs.SwaggerInfo.Host = swaggerHost
	docs.SwaggerInfo.Schemes = []string{protocol}

	serverShutdown := make(chan error, 1)
	go func() {
		var err error
		addr := app.Cfg.HttpServerConfig.Address
		app.Log.Info("server starting", slog.String("address", addr), slog.Bool("tls_enabled", app.Cfg.HttpServerConfig.TLS.Enabled))

		if app.Cfg.HttpServerConfig.TLS.Enabled {
			certFile := app.Cfg.HttpServerConfig.TLS.CertFile
			keyFile := app.Cfg.HttpServerConfig.TLS.KeyFile
			for _, f := range []string{certFile, keyFile} {
				if _, errStat := os.Stat(f); os.IsNotExist(errStat) {
					serverShutdown <- fmt.Errorf("TLS file not found: %s", f)
					return
				}
			}
			err = srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = srv.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Error("server run failed", slog.String("error", err.Error()))
			serverShutdown <- err
			return
		}
		serverShutdown <- nil
	}()

	app.Log.Info(fmt.Sprintf("Swagger docs available at %s://%s%s/docs/index.html",
		protocol, docs.SwaggerInfo.Host, docs.SwaggerInfo.BasePath))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			app.stopBackground()
			return fmt.Errorf("server runtime error: %w", err)
		}
		app.Log.Info("server closed")
	case sig := <-quit:
		app.Log.Info("received OS signal, initiating graceful shutdown", slog.String("signal", sig.String()))
	}

	app.stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		app.Log.Error("server graceful shutdown failed", slog.String("error", err.Error()))
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if app.Cache != nil {
		_ = app.Cache.Close()
	}
	app.Log.Info("server stopped gracefully")
	return nil
}

func (app *App) stopBackground() {
	if app.Cron != nil {
		cronCtx := app.Cron.Stop()
		select {
		case <-cronCtx.Done():
			app.Log.Info("cron scheduler stopped")
		case <-time.After(3 * time.Second):
			app.Log.Warn("cron scheduler stop timed out")
		}
	}
	if app.Sentry {
		sentry.Flush(2 * time.Second)
	}
}

func (app *App) SetupRoutes() {
	app.Router.Use(
		middleware.Recoverer,
		middleware.RequestID,
		logger.New(app.Log),
	)
	if app.Sentry {
		app.Router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	app.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.Cfg.HttpServerConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if app.UploadDir != "" {
		app.Router.Handle(media.UploadPrefix+"*", http.StripPrefix(media.UploadPrefix, http.FileServer(http.Dir(app.UploadDir))))
	}

	app.Router.Get("/api/docs/*", httpSwagger.Handler(httpSwagger.URL("/api/docs/doc.json")))

	AuthUserMiddleware := appMiddleware.NewUserAuth(app.Log, app.Tokens)
	AuthAdminMiddleware := appMiddleware.NewAdminAuth(app.Log, app.Tokens)
	storageCfg := app.Cfg.StorageConfig

	// кэш-адаптеры создаются только при включенном redis: repo принимает nil интерфейс
	var (
		playerCh playerRp.PlayerCache
		teamCh   teamRp.TeamCache
		seriesCh seriesRp.SeriesCache
		userCh   adminRp.UserCache
	)
	if app.Cache != nil {
		playerCh = playerCache.NewPlayerCache(app.Cache, app.Log)
		teamCh = teamCache.NewTeamCache(app.Cache, app.Log)
		seriesCh = seriesCache.NewSeriesCache(app.Cache, app.Log)
		userCh = adminCache.NewUserCache(app.Cache, app.Log)
	}

	app.Router.Route("/api", func(api chi.Router) {
		// --- Player Module ---
		playerDBImpl := playerDb.NewPlayerDatabase(app.Storage.Db, app.Log)
		playerRepoImpl := playerRp.NewRepo(playerDBImpl, playerCh)
		playerUseCaseImpl := playerUC.NewPlayerUseCase(playerRepoImpl, app.Media, app.Log)
		playerCtrl := playerC.NewPlayerController(playerUseCaseImpl, app.Log, storageCfg)

		api.Route("/players", func(r chi.Router) {
			r.Post("/", playerCtrl.CreatePlayer)
			r.Get("/", playerCtrl.GetPlayers)
			r.Get("/count", playerCtrl.CountPlayers)
			r.Get("/with-details", playerCtrl.GetPlayersWithDetails)
			r.Post("/import-excel", playerCtrl.ImportPlayers)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", playerCtrl.GetPlayer)
				r.Patch("/", playerCtrl.UpdatePlayer)
				r.Delete("/", playerCtrl.DeletePlayer)
				r.Patch("/imagen", playerCtrl.UpdatePlayerImage)
			})
		})

		// --- Team Module ---
		teamDBImpl := teamDb.NewTeamDatabase(app.Storage.Db, app.Log)
		teamRepoImpl := teamRp.NewRepo(teamDBImpl, teamCh)
		teamUseCaseImpl := teamUC.NewTeamUseCase(teamRepoImpl, app.Media, app.Log)
		teamCtrl := teamC.NewTeamController(teamUseCaseImpl, app.Log, storageCfg)

		api.Route("/teams", func(r chi.Router) {
			r.Post("/", teamCtrl.CreateTeam)
			r.Get("/", teamCtrl.GetTeams)
			r.Get("/count", teamCtrl.CountTeams)
			r.Get("/with-series", teamCtrl.GetTeamsWithSeries)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", teamCtrl.GetTeam)
				r.Patch("/", teamCtrl.UpdateTeam)
				r.Delete("/", teamCtrl.DeleteTeam)
			})
		})

		// --- Series Module ---
		seriesDBImpl := seriesDb.NewSeriesDatabase(app.Storage.Db, app.Log)
		seriesRepoImpl := seriesRp.NewRepo(seriesDBImpl, seriesCh)
		seriesUseCaseImpl := seriesUC.NewSeriesUseCase(seriesRepoImpl, app.Media, app.Log)
		seriesCtrl := seriesC.NewSeriesController(seriesUseCaseImpl, app.Log, storageCfg)

		api.Route("/series", func(r chi.Router) {
			r.Post("/", seriesCtrl.CreateSeries)
			r.Get("/", seriesCtrl.GetAllSeries)
			r.Get("/count", seriesCtrl.CountSeries)
			r.Get("/latest", seriesCtrl.GetLatestSeries)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", seriesCtrl.GetSeries)
				r.Patch("/", seriesCtrl.UpdateSeries)
				r.Delete("/", seriesCtrl.DeleteSeries)
			})
		})

		// --- Auth Module ---
		authDBImpl := authDb.NewAuthDatabase(app.Storage.Db, app.Log)
		var authInvalidator authRp.Invalidator
		if userCh != nil {
			authInvalidator = userCh
		}
		authRepoImpl := authRp.NewRepo(authDBImpl, authInvalidator)
		authUseCaseImpl := authUC.NewAuthUseCase(app.Log, authRepoImpl, app.Tokens, app.Media)
		authCtrl := authC.NewAuthController(app.Log, authUseCaseImpl, storageCfg)

		api.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(httprate.Limit(10, 1*time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
				r.Post("/login", authCtrl.Login)
				r.Post("/register", authCtrl.Register)
			})
			r.Group(func(r chi.Router) {
				r.Use(AuthUserMiddleware)
				r.Post("/profile", authCtrl.Profile)
				r.Post("/profile/image", authCtrl.ProfileImage)
			})
		})

		// --- Users (admin) ---
		adminDBImpl := adminDb.NewAdminDatabase(app.Storage.Db, app.Log)
		adminRepoImpl := adminRp.NewRepo(adminDBImpl, userCh)
		adminUseCaseImpl := adminUC.NewAdminUseCase(adminRepoImpl, app.Media, app.Log)
		adminCtrl := adminC.NewAdminController(adminUseCaseImpl, app.Log)

		api.Route("/users", func(r chi.Router) {
			r.Use(AuthAdminMiddleware)
			r.Get("/", adminCtrl.GetUsers)
			r.Post("/", adminCtrl.CreateUser)
			r.Get("/{id}", adminCtrl.GetUser)
			r.Patch("/{id}", adminCtrl.UpdateUser)
			r.Delete("/{id}", adminCtrl.DeleteUser)
		})
	})
}

// @title League API
// @version 1.0.0
// @description Fantasy-card league backend: players, teams, series and users.

// @host localhost:4000
// @BasePath /api
// @Schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.MustLoad()
	log := SetupLogger(cfg.Env)
	slog.SetDefault(log)

	app, err := NewApp(cfg, log)
	if err != nil {
		log.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app.SetupRoutes()

	if err := app.Start(); err != nil {
		log.Error("application terminated with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func SetupLogger(env string) *slog.Logger {
	var log *slog.Logger
	level := slog.LevelInfo
	switch strings.ToLower(env) {
	case "local", "dev", "development":
		level = slog.LevelDebug
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true}))
	case "prod", "production":
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true}))
	default:
		level = slog.LevelDebug
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true}))
		log.Warn("unknown environment, defaulting to text debug logger", slog.String("env", env))
	}
	return log
}
