package main

import (
	"fmt"
	"net"
	"os"

	"github.com/it-tools/asset-atlas/pkg/server"
	"github.com/it-tools/asset-atlas/pkg/services/config"
	"github.com/it-tools/asset-atlas/pkg/services/fleet"
	"github.com/it-tools/asset-atlas/pkg/services/inventory"
	"github.com/it-tools/asset-atlas/pkg/store/reportcfg"
	"github.com/it-tools/asset-atlas/pkg/store/reportcfg/memory"
	redisstore "github.com/it-tools/asset-atlas/pkg/store/reportcfg/redis"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath    string
	policyPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Asset Atlas web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultConfigPath(),
		"Path to the fleet registry file (default is $HOME/.assetatlas.cfg)")
	rootCmd.Flags().StringVarP(&policyPath, "policy", "p", "",
		"Path to a policy file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".assetatlas.cfg"
	}
	return fmt.Sprintf("%s/.assetatlas.cfg", home)
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create fleet registry: %w", err)
	}

	policy, err := config.LoadPolicy(policyPath)
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	explorer := inventory.NewExplorer(registry)
	reporter := fleet.NewReporter(explorer, *policy)

	var configs reportcfg.Store
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		logger.Info().Str("addr", redisAddr).Msg("using redis report config store")
		configs = redisstore.NewStore(redisAddr)
	} else {
		configs = memory.NewStore()
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Fleet: `%s`, assets: `%s`, licenses: `%s`",
			profile.Name, profile.AssetsPath, profile.LicensesPath)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Explorer: explorer,
			Reporter: reporter,
			Configs:  configs,
		},
	})

	return api.Start()
}
