package app

import (
	"context"
	"fmt"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/iamvkosarev/role-distributor-bot/config"
	in_memory "github.com/iamvkosarev/role-distributor-bot/internal/storage/in-memory"
	key_value "github.com/iamvkosarev/role-distributor-bot/internal/storage/key-value"
	"github.com/iamvkosarev/role-distributor-bot/internal/storage/sqlite"
	"github.com/iamvkosarev/role-distributor-bot/internal/usecase"
	"github.com/iamvkosarev/role-distributor-bot/pkg/local"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	bot, err := api.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create new bot: %w", err)
	}
	logger.Info("authorized on account", zap.String("username", bot.Self.UserName))

	roleStorage, err := sqlite.NewRoleStorage(cfg.Storage.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open role storage: %w", err)
	}
	defer roleStorage.Close()

	var sessionStorage usecase.SessionStorage
	if cfg.Redis.Endpoint != "" {
		rdb := redis.NewClient(
			&redis.Options{
				Addr: cfg.Redis.Endpoint,
			},
		)
		sessionStorage = key_value.NewSessionStorage(rdb, cfg.Dialog.SessionTTL)
		logger.Info("using redis session storage", zap.String("endpoint", cfg.Redis.Endpoint))
	} else {
		sessionStorage = in_memory.NewSessionStorage(cfg.Dialog.SessionTTL)
	}

	rolesUsecase := usecase.NewRolesUsecase(
		usecase.RolesUsecaseDeps{
			RoleStorage: roleStorage,
		},
	)

	mentionUsecase := usecase.NewMentionUsecase(
		usecase.MentionUsecaseDeps{
			Roles: rolesUsecase,
		},
	)

	dialogUsecase := usecase.NewDialogUsecase(
		usecase.DialogUsecaseDeps{
			Roles:    rolesUsecase,
			Sessions: sessionStorage,
			Members:  usecase.NewTelegramMemberChecker(bot),
			Logger:   logger,
		},
		local.ParseLanguage(cfg.Telegram.Language),
	)

	telegramUsecase, err := usecase.NewTelegramUsecase(
		cfg.Telegram, cfg.Dialog, usecase.TelegramUsecaseDeps{
			Bot:     bot,
			Dialog:  dialogUsecase,
			Mention: mentionUsecase,
			Roles:   rolesUsecase,
			Logger:  logger,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create telegram usecase: %w", err)
	}

	return telegramUsecase.Run(context.Background())
}
