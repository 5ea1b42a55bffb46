// profilerd serves the profiling pipeline over HTTP.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	profilersdk "github.com/caretalk/profiler-sdk-go"
	"github.com/caretalk/profiler-sdk-go/httpapi"
	"github.com/caretalk/profiler-sdk-go/responder"
	"github.com/caretalk/profiler-sdk-go/store"
	"github.com/caretalk/profiler-sdk-go/survey"
)

func main() {
	root := &cobra.Command{
		Use:   "profilerd",
		Short: "Survey profiling and communication-plan service",
	}
	root.AddCommand(serveCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
	flags := cmd.Flags()
	flags.String("addr", ":8080", "listen address")
	flags.String("redis-addr", "", "redis address; empty uses the in-memory store")
	flags.String("openai-api-key", "", "OpenAI API key; empty uses the echo responder")
	flags.String("openai-model", "", "OpenAI model override")
	flags.String("survey-dir", "", "directory with survey definition files")
	flags.String("log-mode", "dev", "log mode: dev or prod")
	_ = viper.BindPFlags(flags)
	viper.SetEnvPrefix("PROFILER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	log, err := newLogger(viper.GetString("log-mode"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := survey.Load(viper.GetString("survey-dir"))
	if err != nil {
		return fmt.Errorf("load survey config: %w", err)
	}

	var profileStore profilersdk.ProfileStore = profilersdk.NewInMemoryProfileStore()
	if redisAddr := viper.GetString("redis-addr"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		profileStore = store.NewRedisProfileStore(client)
		log.Infow("using redis profile store", "addr", redisAddr)
	}

	var chatResponder profilersdk.Responder = profilersdk.EchoResponder{}
	if apiKey := viper.GetString("openai-api-key"); apiKey != "" {
		chatResponder = responder.NewOpenAIResponder(responder.OpenAIConfig{
			APIKey: apiKey,
			Model:  viper.GetString("openai-model"),
		})
		log.Infow("using openai responder")
	}

	engine := profilersdk.NewEngine(profilersdk.EngineConfig{
		Items:      cfg.Items,
		Checklist:  cfg.Checklist,
		Thresholds: cfg.Thresholds,
		Store:      profileStore,
		Responder:  chatResponder,
		Logger:     log,
	})

	router := httpapi.NewRouter(engine, log)
	addr := viper.GetString("addr")
	log.Infow("listening", "addr", addr)
	return router.Run(addr)
}

func newLogger(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if strings.ToLower(mode) == "prod" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
