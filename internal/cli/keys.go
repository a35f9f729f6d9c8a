package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/crypto"
	nodegrpc "github.com/LeJamon/goShieldDEX/internal/grpc"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage signing keys",
}

var keysGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new key pair and print its account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("type")
		kt := crypto.ParseKeyType(name)
		if kt == crypto.KeyTypeUnknown {
			return fmt.Errorf("unknown key type %q", name)
		}
		key, err := crypto.GenerateKeyPair(kt)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string]string{
			"key_type":    kt.String(),
			"account":     key.AccountID().String(),
			"public_key":  key.PublicKeyHex(),
			"private_key": key.PrivateKeyHex(),
		})
	},
}

var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the account controlled by the signing key",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string]string{
			"key_type":   key.Type.String(),
			"account":    key.AccountID().String(),
			"public_key": key.PublicKeyHex(),
		})
	},
}

var signCmd = &cobra.Command{
	Use:   "sign [file]",
	Short: "Sign a JSON transaction and print it with its hash",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		raw, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		t, err := tx.FromJSON(raw)
		if err != nil {
			return err
		}
		key, err := signingKey()
		if err != nil {
			return err
		}
		err = withClient(cmd, func(ctx context.Context, c *nodegrpc.Client) error {
			return fillSequence(ctx, c, t, key)
		})
		if err != nil {
			return err
		}
		if err := tx.Sign(t, key); err != nil {
			return err
		}
		hash, err := tx.ComputeHash(t)
		if err != nil {
			return err
		}
		out, err := tx.ToJSON(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "hash: %s\n", hash)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit [file]",
	Short: "Submit a signed JSON transaction",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		raw, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		return withClient(cmd, func(ctx context.Context, c *nodegrpc.Client) error {
			resp, err := c.SubmitJSON(ctx, raw)
			if err != nil {
				return err
			}
			return reportSubmit(cmd, resp)
		})
	},
}

func init() {
	keysGenerateCmd.Flags().String("type", crypto.KeyTypeSecp256k1.String(), "key type (secp256k1 or ed25519)")
	keysCmd.AddCommand(keysGenerateCmd, keysShowCmd)
	rootCmd.AddCommand(keysCmd, signCmd, submitCmd)
}
