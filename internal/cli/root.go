package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile  string
	grpcAddress string
	keyHex      string
	sequence    uint32
	debug       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shieldd",
	Short: "shieldd - AMM pool accounting and pricing node",
	Long: `shieldd runs a constant product AMM ledger. Pools are created over
two assets, liquidity providers receive share tokens, and swaps are priced
on the x*y=k curve with LP fees and a platform tax withheld from the bid.

Run "shieldd server" to start a node, then use the pool, platform and
referrer commands to sign transactions and submit them over gRPC.`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&grpcAddress, "grpc", "127.0.0.1:50051", "address of the node gRPC endpoint")
	rootCmd.PersistentFlags().StringVar(&keyHex, "key", "", "hex private key used to sign transactions (or SHIELDD_KEY)")
	rootCmd.PersistentFlags().Uint32Var(&sequence, "sequence", 0, "sequence of the signed transaction (0 asks the node)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
