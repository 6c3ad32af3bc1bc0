package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/multiio/multigo/pkg/cmd/cmdutil"
	"github.com/multiio/multigo/pkg/style"
)

var RootCmd = &cobra.Command{
	Use:   "multi",
	Short: "multi.io exchange client",
	Long:  "query the multi.io market data and manage the account from the command line",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cobraLoadDotenv(cmd); err != nil {
			return err
		}

		if err := cobraLoadConfig(cmd); err != nil {
			return err
		}

		if viper.GetBool("no-color") {
			style.ColorEnabled = false
		}

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file you want to load")
	RootCmd.PersistentFlags().String("log-file", "", "write the json logs to the given file, rotated by size")
	RootCmd.PersistentFlags().Bool("no-color", false, "disable the terminal colors")

	// A flag can be 'persistent' meaning that this flag will be available to
	// the command it's assigned to as well as every command under that command.
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

// cobraLoadDotenv loads the dotenv file when it exists, the variables already set are kept
func cobraLoadDotenv(cmd *cobra.Command) error {
	dotenvFile, err := cmd.Flags().GetString("dotenv")
	if err != nil {
		return err
	}

	if len(dotenvFile) == 0 {
		return nil
	}

	if _, err := os.Stat(dotenvFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	log.Debugf("loading dotenv file %s", dotenvFile)
	return godotenv.Load(dotenvFile)
}

func cobraLoadConfig(cmd *cobra.Command) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	if len(configFile) == 0 {
		return nil
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	log.Debugf("config file %s loaded", viper.ConfigFileUsed())
	return nil
}

func setupLogging() {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	logFile := viper.GetString("log-file")
	if len(logFile) == 0 {
		return
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // megabytes
		MaxBackups: 7,
		MaxAge:     28, // days
	}

	logger.AddHook(
		lfshook.NewHook(
			lfshook.WriterMap{
				log.DebugLevel: writer,
				log.InfoLevel:  writer,
				log.WarnLevel:  writer,
				log.ErrorLevel: writer,
				log.FatalLevel: writer,
			},
			&log.JSONFormatter{},
		),
	)
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	// the initializers run after cobra parsed the flags
	cobra.OnInitialize(setupLogging)

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
