package service

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"reviewcash/internal/repository"
	"reviewcash/pkg/config"
	"reviewcash/pkg/models"
)

type Services struct {
	UserService
	TaskService
	SubscriptionService
	TelegramService
}

func NewServices(repos *repository.Repositories, bot BotAPI, cfg *config.Config) *Services {
	userService := NewUserService(repos.UserRepository)
	taskService := NewTaskService(repos.TaskRepository)
	subscriptionService := NewSubscriptionService(bot, cfg.Telegram.RequiredChannel)
	telegramService := NewTelegramService(bot, userService, subscriptionService, cfg.Telegram)
	return &Services{
		UserService:         userService,
		TaskService:         taskService,
		SubscriptionService: subscriptionService,
		TelegramService:     telegramService,
	}
}

type UserService interface {
	EnsureUser(uid string) error
	GetUser(uid string) (models.User, error)
}

type TaskService interface {
	ListActiveTasks() ([]models.Task, error)
}

type SubscriptionService interface {
	CheckSubscription(userID int64) (bool, error)
	IsSubscribed(userID int64) bool
}

type TelegramService interface {
	Run(ctx context.Context) error
	HandleUpdate(update tgbotapi.Update)
}

// BotAPI is the slice of *tgbotapi.BotAPI the services depend on.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}
