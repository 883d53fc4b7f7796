package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Yaaroosh/IM/config"
	chatHttp "github.com/Yaaroosh/IM/internal/chat/delivery/http"
	chatModels "github.com/Yaaroosh/IM/internal/chat/model"
	chatRepository "github.com/Yaaroosh/IM/internal/chat/repository"
	chatUsecase "github.com/Yaaroosh/IM/internal/chat/usecase"
	"github.com/Yaaroosh/IM/internal/hub"
	keysHttp "github.com/Yaaroosh/IM/internal/keys/delivery/http"
	keysModels "github.com/Yaaroosh/IM/internal/keys/model"
	keysRepository "github.com/Yaaroosh/IM/internal/keys/repository"
	keysUsecase "github.com/Yaaroosh/IM/internal/keys/usecase"
	userHttp "github.com/Yaaroosh/IM/internal/user/delivery/http"
	userModels "github.com/Yaaroosh/IM/internal/user/model"
	userRepository "github.com/Yaaroosh/IM/internal/user/repository"
	userUsecase "github.com/Yaaroosh/IM/internal/user/usecase"
	"github.com/Yaaroosh/IM/internal/ws"
	"github.com/Yaaroosh/IM/pkg/logger"
)

func main() {
	configName := "config-local"
	if name := os.Getenv("CONFIG_NAME"); name != "" {
		configName = name
	}

	v, err := config.LoadConfig(configName)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}
	if err := createSchema(ctx, db); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}

	keyRepo := keysRepository.NewKeyRepository(db, *appLogger)
	msgRepo := chatRepository.NewMessageRepository(db, *appLogger)
	userRepo := userRepository.NewUserRepository(db, *appLogger)

	keyUC := keysUsecase.NewKeyUsecase(keyRepo, *appLogger, *cfg)
	msgUC := chatUsecase.NewMessageUsecase(msgRepo, *appLogger)
	userUC := userUsecase.NewUserUsecase(userRepo, *appLogger)

	// One hub for the whole process, handed to every connection handler.
	connHub := hub.New(*appLogger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	keysHttp.NewKeyHandlers(keyUC, *appLogger).MapRoutes(e.Group("/keys"))
	chatHttp.NewMessageHandlers(msgUC, *appLogger).MapRoutes(e)
	userHttp.NewUserHandlers(userUC, *appLogger).MapRoutes(e)
	ws.NewHandler(connHub, msgUC, *appLogger).MapRoutes(e)

	appLogger.Info("starting server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
	if err := e.Start(cfg.Server.Port); err != nil {
		appLogger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func createSchema(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*userModels.User)(nil),
		(*keysModels.IdentityKey)(nil),
		(*keysModels.SignedPreKey)(nil),
		(*keysModels.OneTimePreKey)(nil),
		(*chatModels.Message)(nil),
	}
	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
