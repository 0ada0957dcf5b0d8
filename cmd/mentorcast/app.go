package main

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/clients/discord"
	"github.com/KirkDiggler/mentorcast/internal/clients/email"
	"github.com/KirkDiggler/mentorcast/internal/clients/graph"
	"github.com/KirkDiggler/mentorcast/internal/clients/whatsapp"
	"github.com/KirkDiggler/mentorcast/internal/common/clock"
	"github.com/KirkDiggler/mentorcast/internal/common/logger"
	"github.com/KirkDiggler/mentorcast/internal/common/uuid"
	"github.com/KirkDiggler/mentorcast/internal/config"
	"github.com/KirkDiggler/mentorcast/internal/repositories/directory"
	"github.com/KirkDiggler/mentorcast/internal/repositories/lock"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"github.com/KirkDiggler/mentorcast/internal/services/announcer"
	"github.com/KirkDiggler/mentorcast/internal/services/conflict"
	"github.com/KirkDiggler/mentorcast/internal/services/meeting"
	"github.com/KirkDiggler/mentorcast/internal/services/messaging"
	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"github.com/KirkDiggler/mentorcast/internal/services/schedule"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// app is every wired component the commands need
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	ids       uuid.UUID
	schedule  schedule.Service
	announcer announcer.Announcer

	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApp loads configuration and wires the service graph. Optional
// integrations are left out when their settings are missing.
func buildApp(ctx context.Context) (_ *app, err error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, ids: uuid.New()}
	a.closers = append(a.closers, func() { _ = log.Sync() })
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
	}

	sessionRepo, err := session.NewGorm(&session.Config{DB: db})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}
	var directoryRepo directory.Repository
	directoryRepo, err = directory.NewGorm(&directory.Config{DB: db})
	if err != nil {
		return nil, fmt.Errorf("failed to create directory repository: %w", err)
	}

	var locker lock.Locker
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, func() { _ = redisClient.Close() })

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		locker, err = lock.NewRedis(&lock.Config{RedisClient: redisClient, UUIDGenerator: a.ids})
		if err != nil {
			return nil, fmt.Errorf("failed to create locker: %w", err)
		}
		directoryRepo, err = directory.NewRedisCache(&directory.CacheConfig{
			RedisClient: redisClient,
			Backend:     directoryRepo,
			TTL:         cfg.DirectoryCacheTTL,
			Logger:      log,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create directory cache: %w", err)
		}
	} else {
		log.Warn("REDIS_ADDR not set, running without session locks or directory cache")
	}

	var provider meeting.Provider
	if cfg.MeetingEnabled() {
		provider, err = graph.New(&graph.Config{
			TenantID:     cfg.Graph.TenantID,
			ClientID:     cfg.Graph.ClientID,
			ClientSecret: cfg.Graph.ClientSecret,
			Organizer:    cfg.Graph.Organizer,
			Timeout:      cfg.CallTimeout,
			Logger:       log,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create meeting provider: %w", err)
		}
	} else {
		log.Warn("GRAPH_* not set, meetings will not be created or regenerated")
	}

	var emailSender notify.EmailSender
	if cfg.SMTP.Host != "" {
		emailSender, err = email.New(&email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			Logger:   log,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create email sender: %w", err)
		}
	}

	var messageSender notify.MessageSender
	if cfg.WhatsApp.APIURL != "" && cfg.WhatsApp.Token != "" {
		messageSender, err = whatsapp.New(&whatsapp.Config{
			APIURL: cfg.WhatsApp.APIURL,
			Token:  cfg.WhatsApp.Token,
			Logger: log,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create whatsapp client: %w", err)
		}
	}

	var audit schedule.AuditSink
	if cfg.Discord.Token != "" && cfg.Discord.ChannelID != "" {
		audit, err = discord.New(&discord.Config{
			Token:     cfg.Discord.Token,
			ChannelID: cfg.Discord.ChannelID,
			Logger:    log,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord feed: %w", err)
		}
	}

	clk := &clock.DefaultClock{}

	detector, err := conflict.New(&conflict.Config{SessionRepo: sessionRepo, Logger: log})
	if err != nil {
		return nil, err
	}
	meetings, err := meeting.New(&meeting.Config{
		Provider:      provider,
		SessionRepo:   sessionRepo,
		DirectoryRepo: directoryRepo,
		Location:      cfg.Location(),
		Logger:        log,
	})
	if err != nil {
		return nil, err
	}
	resolver, err := recipients.New(&recipients.Config{DirectoryRepo: directoryRepo, Logger: log})
	if err != nil {
		return nil, err
	}
	msgs, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return nil, err
	}
	dispatcher, err := notify.New(&notify.Config{
		EmailSender:   emailSender,
		MessageSender: messageSender,
		Messaging:     msgs,
		Clock:         clk,
		Delays: notify.DelayPolicy{
			Student: cfg.StudentSendDelay,
			Mentor:  cfg.MentorSendDelay,
			Admin:   cfg.AdminSendDelay,
		},
		DefaultCountryCode: cfg.DefaultCountryCode,
		Logger:             log,
	})
	if err != nil {
		return nil, err
	}

	a.schedule, err = schedule.New(&schedule.Config{
		SessionRepo:         sessionRepo,
		Detector:            detector,
		Meetings:            meetings,
		Resolver:            resolver,
		Dispatcher:          dispatcher,
		Locker:              locker,
		Audit:               audit,
		Clock:               clk,
		Logger:              log,
		MeetingDuration:     cfg.MeetingDuration,
		SwapMeetingDuration: cfg.SwapMeetingDuration,
		CallTimeout:         cfg.CallTimeout,
		LockTTL:             cfg.LockTTL,
	})
	if err != nil {
		return nil, err
	}

	a.announcer, err = announcer.New(&announcer.Config{
		SessionRepo: sessionRepo,
		Resolver:    resolver,
		Dispatcher:  dispatcher,
		Locker:      locker,
		LockTTL:     cfg.LockTTL,
		Clock:       clk,
		Location:    cfg.Location(),
		WindowDays:  cfg.AnnounceWindowDays,
		Logger:      log,
	})
	if err != nil {
		return nil, err
	}

	log.Info("mentorcast wired",
		zap.String("env", cfg.AppEnv),
		zap.Bool("locks", locker != nil),
		zap.Bool("meetings", provider != nil),
		zap.Bool("email", emailSender != nil),
		zap.Bool("whatsapp", messageSender != nil),
		zap.Bool("audit", audit != nil))
	return a, nil
}
