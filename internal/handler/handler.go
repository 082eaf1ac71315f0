package handler

import (
	"sync"

	"vidgate/internal/config"
	"vidgate/internal/domain"
	"vidgate/internal/middleware"
	"vidgate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgInternalError = "Something went wrong. Please try again later."

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	verification *service.VerificationService
	users        *service.UserService
	videos       *service.VideoService
	stats        *service.StatsService
	messages     config.Messages
	adminIDs     []int64
	admins       map[int64]bool
	sourceChanID int64
	targetChans  []int64
	logger       *zap.Logger

	// Per-user interaction state (pending deliveries); in-memory only,
	// forgotten on restart
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Source-channel posts waiting to be paired
	pairing pairingState
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	verification *service.VerificationService,
	users *service.UserService,
	videos *service.VideoService,
	stats *service.StatsService,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	admins := make(map[int64]bool, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = true
	}

	return &Handler{
		bot:          bot,
		verification: verification,
		users:        users,
		videos:       videos,
		stats:        stats,
		messages:     cfg.Messages,
		adminIDs:     cfg.AdminIDs,
		admins:       admins,
		sourceChanID: cfg.SourceChannelID,
		targetChans:  cfg.TargetChannels,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
		pairing:      newPairingState(),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/stats", h.handleMyStats)
	h.bot.Handle("/profile", h.handleProfile)
	h.bot.Handle("/panel", h.handlePanel, middleware.Admin(h.adminIDs, h.logger))

	// Text messages (legacy menu button labels)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnRecheck, h.handleVerify)
	h.bot.Handle(&btnAdminStats, h.handleAdminStats)
	h.bot.Handle(&btnAdminUsers, h.handleAdminUsers)
	h.bot.Handle(&btnAdminVideos, h.handleAdminVideos)
	h.bot.Handle(&btnAdminSettings, h.handleAdminSettings)
	h.bot.Handle(&btnAdminBack, h.handleAdminBack)
	h.bot.Handle(&btnDeleteVideo, h.handleVideoDelete)

	// Source-channel posts
	h.bot.Handle(tele.OnChannelPost, h.handleChannelPost)

	// Generic callback handler for anything that didn't route
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns the user's current interaction state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{}
	}
	return state
}

// SetState sets the user's interaction state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState clears the user's interaction state
func (h *Handler) ResetState(userID int64) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	delete(h.states, userID)
}

func (h *Handler) isAdmin(userID int64) bool {
	return h.admins[userID]
}

// Inline keyboard buttons
var (
	btnRecheck = tele.Btn{
		Unique: "verify",
		Text:   "✅ Joined",
	}
	btnAdminStats = tele.Btn{
		Unique: "admin_stats",
		Text:   "📤 Post Stats",
	}
	btnAdminUsers = tele.Btn{
		Unique: "admin_users",
		Text:   "👥 Users",
	}
	btnAdminVideos = tele.Btn{
		Unique: "admin_videos",
		Text:   "🎬 Videos",
	}
	btnAdminSettings = tele.Btn{
		Unique: "admin_settings",
		Text:   "⚙️ Settings",
	}
	btnAdminBack = tele.Btn{
		Unique: "admin_back",
		Text:   "🔙 Back",
	}
	btnDeleteVideo = tele.Btn{
		Unique: "del_video",
	}
)
