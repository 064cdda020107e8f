package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/go-telegram/bot"

	"github.com/vikarrry7/zoobot/pkg/database"
	"github.com/vikarrry7/zoobot/pkg/knowledge"
	"github.com/vikarrry7/zoobot/pkg/logger"
	"github.com/vikarrry7/zoobot/pkg/repository"
	"github.com/vikarrry7/zoobot/pkg/services"
	"github.com/vikarrry7/zoobot/pkg/telegram/handlers"
	"github.com/vikarrry7/zoobot/pkg/telegram/matchers"
	"github.com/vikarrry7/zoobot/pkg/telegram/middleware"
	"github.com/vikarrry7/zoobot/pkg/vision/clarifai"
	"github.com/vikarrry7/zoobot/pkg/wiki"
)

type Config struct {
	TelegramBotToken          string  `env:"TELEGRAM_TOKEN,required"`
	ClarifaiAPIKey            string  `env:"CLARIFAI_API_KEY"`
	TelegramAuthorizedUserIDs []int64 `env:"TELEGRAM_AUTHORIZED_USER_IDS" envSeparator:" "`
	PgURL                     string  `env:"DATABASE_URL"`
	PgHost                    string  `env:"DB_HOST" envDefault:"localhost:5432"`
	BunDebug                  int     `env:"BUNDEBUG" envDefault:"0"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	svcGroup, err := setupServices(ctx)
	if err != nil {
		return err
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return svcGroup.Start(ctx)
}

func setupServices(_ context.Context) (services.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	var svc services.Service
	var svcGroup services.Group

	db, err := database.NewDB(cfg.PgURL, cfg.PgHost)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	if cfg.ClarifaiAPIKey == "" {
		slog.Warn("CLARIFAI_API_KEY is not set, photo recognition will be unavailable")
	}

	classifier := clarifai.NewClient(cfg.ClarifaiAPIKey)
	encyclopedia := wiki.NewClient()
	kb := knowledge.NewBase()

	contextRepository := repository.NewContextRepository()
	recognitionRepository := repository.NewRecognitionRepository(db)

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover,
			middleware.RequestID,
			middleware.Auth(cfg.TelegramAuthorizedUserIDs),
			middleware.Typing,
		),

		bot.WithDefaultHandler(handlers.AnswerQuestion(contextRepository, kb, encyclopedia)),
		bot.WithMessageTextHandler("/start", bot.MatchTypePrefix, handlers.Start(contextRepository)),
		bot.WithMessageTextHandler("/help", bot.MatchTypePrefix, handlers.Start(contextRepository)),
		bot.WithMessageTextHandler("/history", bot.MatchTypePrefix, handlers.ShowHistory(recognitionRepository)),
	}

	b, err := bot.New(cfg.TelegramBotToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	b.RegisterHandlerMatchFunc(matchers.HasPhoto(), handlers.RecognizePhoto(
		classifier, contextRepository, kb, encyclopedia, recognitionRepository))

	if svc, err = services.NewTelegramBot(b); err == nil {
		svcGroup = append(svcGroup, svc)
	} else {
		return nil, err
	}

	return svcGroup, nil
}
