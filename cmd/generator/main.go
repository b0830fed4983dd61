package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/esssios/evm-tokenList/config"
	"github.com/esssios/evm-tokenList/internal/adapters/coingecko"
	"github.com/esssios/evm-tokenList/internal/adapters/logger"
	listfiles "github.com/esssios/evm-tokenList/internal/adapters/tokenlist"
	listservice "github.com/esssios/evm-tokenList/internal/application/tokenlist"
	"github.com/esssios/evm-tokenList/internal/domain/network"
)

func main() {
	root := &cobra.Command{
		Use:          "generator",
		Short:        "EVM token list generator",
		SilenceUsage: true,
	}

	genCmd := &cobra.Command{
		Use:   "generate [network]",
		Short: "Generate a token list for one network",
		Long: "Fetches the upstream coins listing for the given network (default: " +
			network.DefaultKey + "), filters it to tokens with a contract address on " +
			"that network and writes <network>-tokenlist.json.",
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}

	genCmd.Flags().String("out-dir", "", "output directory (defaults to TOKENLIST_OUTPUT_DIR or the working directory)")
	genCmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	genCmd.Flags().Bool("dump-setup", false, "dump the resolved run setup to stderr before fetching")

	root.AddCommand(genCmd)

	networksCmd := &cobra.Command{
		Use:   "networks",
		Short: "List supported network keys",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, cfg := range network.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s chainId=%-6d platform=%s\n", cfg.Key, cfg.ChainID, cfg.PlatformSlug)
			}
		},
	}

	root.AddCommand(networksCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: .env file not found: %v\n", err)
	}

	cfg := config.Load()

	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = cfg.App.LogLevel
	}

	log, err := logger.New(level, cfg.App.Environment == "development")
	if err != nil {
		return err
	}
	defer log.Sync()

	key := network.DefaultKey
	if len(args) > 0 {
		key = args[0]
	}

	net, err := network.Resolve(key)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = cfg.Output.Dir
	}

	if dump, _ := cmd.Flags().GetBool("dump-setup"); dump {
		fmt.Fprint(os.Stderr, spew.Sdump(net))
	}

	httpClient := &http.Client{Timeout: cfg.CoinGecko.RequestTimeout}
	client := coingecko.NewClient(httpClient, cfg.CoinGecko.BaseURL, cfg.CoinGecko.APIKey)

	service := listservice.NewService(client, log)

	ctx := context.Background()

	log.Info("Generating token list",
		zap.String("network", net.Key),
		zap.String("platform", net.PlatformSlug),
		zap.Int("chain_id", net.ChainID),
	)

	list := service.Generate(ctx, net)

	writer := listfiles.NewWriter(outDir)
	path, err := writer.Write(net.Key, list)
	if err != nil {
		return fmt.Errorf("write token list: %w", err)
	}

	log.Info("Wrote token list",
		zap.String("network", net.Key),
		zap.String("path", path),
		zap.Int("tokens", len(list.Tokens)),
	)

	if cfg.Database.Path != "" {
		store, err := listfiles.NewStore(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open tokenlist store: %w", err)
		}
		defer store.Close()

		run, err := store.SaveList(ctx, net.Key, list)
		if err != nil {
			return fmt.Errorf("record generation run: %w", err)
		}

		log.Info("Recorded generation run",
			zap.String("run_id", run.ID),
			zap.Int("tokens", run.TokenCount),
		)
	}

	return nil
}
