package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/clubevents-api/internal/api"
	"github.com/vietanh2810/clubevents-api/internal/config"
	"github.com/vietanh2810/clubevents-api/internal/db"
	"github.com/vietanh2810/clubevents-api/internal/logger"
	"github.com/vietanh2810/clubevents-api/internal/repository/dao"
	"github.com/vietanh2810/clubevents-api/internal/settings"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	params, err := settings.Load(postgresDB)
	if err != nil {
		return fmt.Errorf("failed to load parameters -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, params)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
