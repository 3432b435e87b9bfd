package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// Flags
	listen      string
	model       string
	personasDir string
	cfgFile     string

	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shaimind",
	Short: "Chat with historical-figure personas backed by an LLM",
	Long: `shaimind serves a web chat UI for conversing with configurable
personas. Each persona carries traits, thematic anchors and an evolving
emotional state that shape the prompt sent to the chat-completion API.

Running without a subcommand starts the server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.RunE = runServe

	rootCmd.Flags().StringVar(&listen, "listen", "", "Listen address (default 127.0.0.1:8750)")
	rootCmd.Flags().StringVar(&model, "model", "", "Model override (e.g. 'gpt-4o')")
	rootCmd.Flags().StringVar(&personasDir, "personas-dir", "", "Directory of persona definition files")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/shaimind/config.toml)")

	viper.BindPFlag("server.listen", rootCmd.Flags().Lookup("listen"))
	viper.BindPFlag("openai.model", rootCmd.Flags().Lookup("model"))
	viper.BindPFlag("personas.dir", rootCmd.Flags().Lookup("personas-dir"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home + "/.config/shaimind")
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	// SHAIMIND_OPENAI_API_KEY maps to the openai.api_key setting
	viper.SetEnvPrefix("SHAIMIND")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.ReadInConfig()
}
