package cmd

import (
	"fmt"
	"os"
	"strings"

	"vindec/internal/cmd/root"
	"vindec/internal/source/savefile"
	"vindec/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vindec [VIN]",
	Short: "Decode My Winter Car VINs from the save file or by hand",
	Args:  cobra.MaximumNArgs(1),
	Run:   root.Run,
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().Bool("no-tui", false, "Print the decoded fields instead of starting the TUI")
	rootCmd.PersistentFlags().String("file", savefile.DefaultPath(), "Path to carparts.txt")
	rootCmd.PersistentFlags().String("vin", "", "VIN to decode instead of reading the save file")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("no-tui", rootCmd.PersistentFlags().Lookup("no-tui"))
	viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("vin", rootCmd.PersistentFlags().Lookup("vin"))

	// Set default values
	viper.SetDefault("debug", false)
	viper.SetDefault("no-tui", false)
	viper.SetDefault("file", savefile.DefaultPath())
	viper.SetDefault("vin", "")

	viper.SetEnvPrefix("vindec")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("failed to read config %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

func initLogger() {
	log.InitLogger(viper.GetBool("debug"))
	if f := viper.ConfigFileUsed(); f != "" {
		log.Debug("using config file", zap.String("path", f))
	}
}

func Execute() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
