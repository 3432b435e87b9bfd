package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"shaimind/src/config"
	serrors "shaimind/src/errors"
	"shaimind/src/llm"
	"shaimind/src/personality"
	"shaimind/src/server"
	"shaimind/src/session"
)

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		logger.Error("failed to load settings", zap.Error(err))
		return err
	}

	// Flag and env overrides on top of config.toml
	if v := viper.GetString("server.listen"); v != "" {
		settings.Server.Listen = v
	}
	if v := viper.GetString("openai.model"); v != "" {
		settings.OpenAI.Model = v
	}
	if v := viper.GetString("personas.dir"); v != "" {
		settings.Personas.Dir = v
	}
	if v := viper.GetString("openai.api_key"); v != "" {
		settings.OpenAI.APIKey = v
	}

	if settings.OpenAI.APIKey == "" {
		logger.Error("OpenAI API key not found; set SHAIMIND_OPENAI_API_KEY or api_key in config.toml")
		return serrors.ErrAPIKeyMissing
	}

	if err := config.EnsureConfigDirs(); err != nil {
		logger.Error("failed to create config directories", zap.Error(err))
		return err
	}

	catalog, err := personality.LoadCatalog(settings.Personas.Dir, logger.Named("personas"))
	if err != nil {
		logger.Error("failed to load persona catalog", zap.Error(err))
		return err
	}
	logger.Info("loaded personas", zap.Strings("keys", catalog.Keys()))

	client := llm.NewClient(settings.OpenAI)
	generator := llm.NewGenerator(client, logger.Named("llm"))
	manager := session.NewManager(catalog, generator)
	srv := server.New(settings.Server.Listen, manager, logger.Named("server"))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
