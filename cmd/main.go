package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"reviewcash"
	"reviewcash/internal/handler"
	"reviewcash/internal/repository"
	"reviewcash/internal/service"
	"reviewcash/pkg/config"
	"reviewcash/pkg/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %s", err.Error())
	}

	manager, err := sqlite.NewManager(cfg.DB, log.Warnf)
	if err != nil {
		log.Fatalf("can't open sqlite db: %s", err.Error())
	}
	sqlite.MigrateDB(manager.DB(), cfg.DB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go manager.MonitorAndReopen(ctx, 5*time.Second)

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Fatalf("can't authorize bot: %s", err.Error())
	}
	log.Infof("Authorized on account %s", bot.Self.UserName)

	repos := repository.NewRepositories(manager.DB())
	services := service.NewServices(repos, bot, cfg)
	handlers := handler.NewHandlers(services, cfg)

	go func() {
		if err := services.TelegramService.Run(ctx); err != nil {
			log.Errorf("telegram service stopped: %s", err.Error())
		}
	}()

	gin.SetMode(cfg.Server.GinMode)
	srv := new(reviewcash.Server)
	go func() {
		if err := srv.Run(cfg.Server.Host, cfg.Server.Port, handlers.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error occurred while running http server, %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Print("ReviewCash shutting down")
	cancel()

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("error occured on server shutting down: %s", err.Error())
	}

	if err := manager.Close(); err != nil {
		log.Fatalf("error occured on db connection close: %s", err.Error())
	}
}
