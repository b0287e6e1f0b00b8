package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wholesale-delivery/config"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "wholesale",
	Short: "Wholesale delivery management API",
	Long: `wholesale runs the back office of a wholesale delivery business: admins manage
vendors, drivers and inventory, and truck drivers bill vendors and collect payments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("port", "", "HTTP port (env PORT)")
	flags.String("mongo-url", "", "MongoDB connection string (env MONGO_URL)")
	flags.String("mongo-database", "", "MongoDB database name (env MONGO_DATABASE)")
	flags.Bool("require-auth", false, "require bearer tokens on management routes (env REQUIRE_AUTH)")

	for key, flag := range map[string]string{
		"port":           "port",
		"mongo_url":      "mongo-url",
		"mongo_database": "mongo-database",
		"require_auth":   "require-auth",
	} {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}

	rootCmd.AddCommand(serveCmd, seedCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
