package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dayflow/config"
	"dayflow/internal/model"
	"dayflow/internal/task"
	"dayflow/pkg/authclient"
	"dayflow/pkg/gcalendar"
	"dayflow/pkg/llmprovider"
	"dayflow/pkg/log"
	"dayflow/pkg/timemath"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	db       *gorm.DB
	llm      *llmprovider.Manager
	verifier authclient.Verifier
	calendar gcalendar.EventCreator
	cal      *timemath.Calendar
	cfg      *config.Config

	// Wired during mapHandlers; exposed for the nightly job.
	taskUC task.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB        *gorm.DB
	LLM       *llmprovider.Manager
	Verifier  authclient.Verifier
	Calendar  gcalendar.EventCreator // nil disables calendar export
	Cal       *timemath.Calendar
	AppConfig *config.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		llm:         cfg.LLM,
		verifier:    cfg.Verifier,
		calendar:    cfg.Calendar,
		cal:         cfg.Cal,
		cfg:         cfg.AppConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	switch model.Environment(srv.environment) {
	case model.EnvironmentDevelopment, model.EnvironmentProduction:
	default:
		return errors.New("environment must be development or production")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.llm == nil {
		return errors.New("LLM manager is required")
	}
	if srv.verifier == nil {
		return errors.New("auth verifier is required")
	}
	if srv.cal == nil {
		return errors.New("calendar is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	return nil
}

// TaskUseCase exposes the wired task use case for background jobs.
func (srv *HTTPServer) TaskUseCase() task.UseCase {
	return srv.taskUC
}
