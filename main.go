package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yfnsimba23/Founder-Funder-Hub/config"
	feedRepo "github.com/yfnsimba23/Founder-Funder-Hub/internal/feed/repository"
	feedUC "github.com/yfnsimba23/Founder-Funder-Hub/internal/feed/usecase"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/handlers"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/identity"
	models "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
	identityRepo "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/repository"
	identityUC "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/usecase"
	messagingRepo "github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/repository"
	messagingUC "github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/usecase"
	scheduleRepo "github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule/repository"
	scheduleUC "github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule/usecase"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	ctx := context.Background()

	// Identity + session
	profiles := identityRepo.NewProfileRepository(*lg)
	identityUsecase := identityUC.NewIdentityUsecase(profiles, *lg)

	// Feed
	posts := feedRepo.NewPostRepository()
	feedUsecase := feedUC.NewFeedUsecase(posts, *lg)

	// Messaging
	messages := messagingRepo.NewMessageRepository()
	messagingUsecase := messagingUC.NewMessagingUsecase(messages, profiles, *lg)

	// Schedule (client-local slot store)
	if err := os.MkdirAll(filepath.Dir(cfg.Schedule.Path), 0o755); err != nil {
		log.Fatalf("failed to create schedule dir: %v", err)
	}
	db, err := scheduleRepo.OpenDB(cfg.Schedule.Path)
	if err != nil {
		log.Fatalf("failed to open schedule store: %v", err)
	}
	defer db.Close()
	events := scheduleRepo.NewEventRepository(db, cfg.Schedule.Slot)
	if err := events.Init(ctx); err != nil {
		log.Fatalf("failed to init schedule store: %v", err)
	}
	scheduleUsecase := scheduleUC.NewScheduleUsecase(events, *lg)

	if cfg.Seed.DemoAccounts {
		seedDemoAccounts(ctx, identityUsecase, lg)
	}

	if !cfg.LoggerMode.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", handlers.SignUpHandler(identityUsecase))
			auth.POST("/signin", handlers.SignInHandler(identityUsecase))
			auth.POST("/signin/:provider", handlers.SocialSignInHandler(identityUsecase))
			auth.POST("/signout", handlers.SignOutHandler(identityUsecase))
			auth.GET("/me", handlers.CurrentUserHandler(identityUsecase))
		}

		api.GET("/profiles", handlers.ListProfilesHandler(identityUsecase))
		api.GET("/profiles/:uid", handlers.GetProfileHandler(identityUsecase))
		api.PATCH("/profiles/:uid", handlers.UpdateProfileHandler(identityUsecase))

		api.GET("/posts", handlers.ListPostsHandler(feedUsecase))
		api.POST("/posts", handlers.CreatePostHandler(feedUsecase, identityUsecase))

		api.GET("/conversations", handlers.ListConversationsHandler(messagingUsecase, identityUsecase))
		api.GET("/conversations/lookup", handlers.LookupConversationHandler(messagingUsecase, identityUsecase))
		api.GET("/messages/:id", handlers.ListMessagesHandler(messagingUsecase))
		api.POST("/messages/:id", handlers.SendMessageHandler(messagingUsecase, identityUsecase))

		api.GET("/schedule/events", handlers.ListEventsHandler(scheduleUsecase))
		api.POST("/schedule/events", handlers.AddEventHandler(scheduleUsecase))
		api.DELETE("/schedule/events/:id", handlers.DeleteEventHandler(scheduleUsecase))
		api.DELETE("/schedule/events", handlers.ClearEventsHandler(scheduleUsecase))
	}

	lg.Info("server listening", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// seedDemoAccounts creates the two accounts the social sign-in buttons
// resolve to. Creation failures are logged, not fatal: a duplicate just
// means the process restarted against pre-seeded state.
func seedDemoAccounts(ctx context.Context, uc identity.IdentityUsecase, lg *logger.Logger) {
	seeds := []identity.CreateProfileCommand{
		{
			Email:        identityUC.GoogleDemoEmail,
			Role:         models.RoleFounder,
			FullName:     "Alex Founder",
			StartupName:  "Innovate AI",
			OneLinePitch: "AI-powered solutions for modern businesses.",
			Industry:     "AI",
			FundingStage: "Seed",
			MyAsk:        "Seeking connections with enterprise clients and strategic partners.",
			PitchDeckURL: "#",
		},
		{
			Email:            identityUC.AppleDemoEmail,
			Role:             models.RoleFunder,
			FullName:         "Bella Funder",
			FirmName:         "Capital Ventures",
			InvestmentThesis: "Investing in disruptive, early-stage SaaS and FinTech companies.",
			PreferredStage:   "Seed",
			WhatIOffer:       "Extensive mentorship, operational support, and access to our network.",
		},
	}
	for _, cmd := range seeds {
		if _, err := uc.CreateProfile(ctx, cmd); err != nil {
			lg.Warn("demo account not seeded", "email", cmd.Email, "err", err)
		}
	}
}
