package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"reviewcash/internal/service"
	"reviewcash/pkg/config"
	"reviewcash/pkg/util"
)

type Handlers struct {
	services *service.Services
	cfg      *config.Config
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{services: services, cfg: cfg}
}

func (h *Handlers) InitRoutes() *gin.Engine {
	router := gin.Default()
	pprof.Register(router)
	router.Use(util.CORS())

	rl := newRateLimiter()
	api := router.Group("/api")
	api.Use(rl.Middleware())
	api.POST("/check-subscription", h.checkSubscription)
	api.GET("/profile", h.profile)
	api.GET("/tasks", h.tasks)

	router.POST("/webhook/:token", h.webhook)

	// Everything else is the web app: index.html and its assets.
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(h.cfg.Server.StaticDir))))

	return router
}

type checkSubscriptionRequest struct {
	UID string `json:"uid"`
}

// checkSubscription mirrors the bot's gate for the web app. A missing
// or malformed uid short-circuits to ok:false without contacting
// Telegram.
func (h *Handlers) checkSubscription(c *gin.Context) {
	var req checkSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UID == "" {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}

	userID, err := strconv.ParseInt(req.UID, 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": h.services.SubscriptionService.IsSubscribed(userID)})
}

func (h *Handlers) profile(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "uid is required"})
		return
	}

	if err := h.services.UserService.EnsureUser(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}

	user, err := h.services.UserService.GetUser(uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}

func (h *Handlers) tasks(c *gin.Context) {
	tasks, err := h.services.TaskService.ListActiveTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "tasks": tasks})
}

// webhook accepts Telegram's push delivery. The bot token in the path
// is what authenticates Telegram, so anything else is rejected.
func (h *Handlers) webhook(c *gin.Context) {
	if c.Param("token") != h.cfg.Telegram.Token {
		c.String(http.StatusForbidden, "forbidden")
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.String(http.StatusBadRequest, "bad update")
		return
	}

	h.services.TelegramService.HandleUpdate(update)
	c.String(http.StatusOK, "OK")
}
