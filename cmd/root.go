package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	consts "github.com/khanhnv2901/cookiescan-cli/internal/shared/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var logger *zap.SugaredLogger
var outputDir string

var rootCmd = &cobra.Command{
	Use:   "cookiescan",
	Short: "Ad-hoc cookie security checks against a single target site",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".cookiescan")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()
		outputDir = viper.GetString("output_dir")
		if outputDir == "" {
			outputDir = "."
		}

		// create output dir if not exists
		if err := os.MkdirAll(outputDir, consts.DefaultDirPerm); err != nil {
			return fmt.Errorf("failed to create output directory: %s", err.Error())
		}

		// init logger
		l, _ := zap.NewProduction()
		logger = l.Sugar()

		// Make final outputDir absolute (for clarity in logs)
		if abs, err := filepath.Abs(outputDir); err == nil {
			outputDir = abs
		}

		logger.Infof("output_dir=%s", outputDir)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cookiescan.yaml)")

	// add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}
