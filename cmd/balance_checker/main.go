package main

import (
	"os"

	"starknet_balance_checker/internal/infrastructure/configloader"
	"starknet_balance_checker/internal/infrastructure/walletloader"
	"starknet_balance_checker/internal/pkg/logger"
	"starknet_balance_checker/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func main() {
	utils.LoadEnvironment()

	var configPath string

	rootCmd := &cobra.Command{
		Use:          "balance_checker",
		Short:        "Starknet wallet balance checker",
		Long:         `balance_checker reads Starknet token balances and serves them as MCP tools or a REST API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		utils.GetEnv("CONFIG_PATH", configloader.DefaultConfigPath), "Path to the YAML configuration file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the balance tools over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	httpCmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTTP(cmd.Context(), configPath)
		},
	}

	var (
		walletsFile string
		textOutput  bool
	)
	checkCmd := &cobra.Command{
		Use:   "check [address...]",
		Short: "Print balance reports for the given addresses and/or a wallet file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !cmd.Flags().Changed("wallets") {
				walletsFile = walletloader.DefaultWalletFilePath
			}
			return runCheck(cmd.Context(), configPath, args, walletsFile, textOutput, cmd.OutOrStdout())
		},
	}
	checkCmd.Flags().StringVarP(&walletsFile, "wallets", "w", "", "File with one wallet address per line")
	checkCmd.Flags().BoolVarP(&textOutput, "text", "t", false, "Print human readable text instead of JSON")

	rootCmd.AddCommand(serveCmd, httpCmd, checkCmd)

	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
