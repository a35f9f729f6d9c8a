package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/platform"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/referrer"
	nodegrpc "github.com/LeJamon/goShieldDEX/internal/grpc"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Manage platform tax configs (admin only)",
}

var platformCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a platform config",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		tax, err := flagRate(cmd, "tax")
		if err != nil {
			return err
		}
		index, _ := cmd.Flags().GetUint32("index")
		t := platform.NewCreatePlatformConfig(key.AccountID(), index, tax)
		cmd.PrintErrf("platform config: %s\n", t.ConfigID())
		return signAndSubmit(cmd, t)
	},
}

var platformUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rewrite a platform config",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "config")
		if err != nil {
			return err
		}
		tax, err := flagRate(cmd, "tax")
		if err != nil {
			return err
		}
		return signAndSubmit(cmd, platform.NewUpdatePlatformConfig(key.AccountID(), id, tax))
	},
}

var platformSetTaxCmd = &cobra.Command{
	Use:   "set-tax",
	Short: "Change the tax rate of a platform config",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "config")
		if err != nil {
			return err
		}
		tax, err := flagRate(cmd, "tax")
		if err != nil {
			return err
		}
		return signAndSubmit(cmd, platform.NewUpdateTax(key.AccountID(), id, tax))
	},
}

var platformShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a platform config",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := flagHash(cmd, "config")
		if err != nil {
			return err
		}
		return withClient(cmd, func(ctx context.Context, c *nodegrpc.Client) error {
			resp, err := c.GetPlatformConfig(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), struct {
				*nodegrpc.PlatformConfigResponse
				TaxRate string `json:"tax_rate"`
			}{resp, amount.FormatRate(resp.Tax)})
		})
	},
}

var referrerCmd = &cobra.Command{
	Use:   "referrer",
	Short: "Register and inspect referrers",
}

var referrerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record the referrer of the signing account for a pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		ref, err := flagAccount(cmd, "referrer")
		if err != nil {
			return err
		}
		pool, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		return signAndSubmit(cmd, referrer.NewCreateReferrer(key.AccountID(), ref, pool))
	},
}

var referrerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the referrer recorded for an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		referee, err := flagAccount(cmd, "referee")
		if err != nil {
			return err
		}
		return withClient(cmd, func(ctx context.Context, c *nodegrpc.Client) error {
			resp, err := c.GetReferrer(ctx, referee)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		})
	},
}

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Credit a balance on a node that allows funding",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := flagToken(cmd, "token")
		if err != nil {
			return err
		}
		owner, err := flagAccount(cmd, "owner")
		if err != nil {
			return err
		}
		v, _ := cmd.Flags().GetUint64("amount")
		return withClient(cmd, func(ctx context.Context, c *nodegrpc.Client) error {
			balance, err := c.Fund(ctx, token, owner, v)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), nodegrpc.FundResponse{Balance: balance})
		})
	},
}

func init() {
	platformCreateCmd.Flags().Uint32("index", 0, "config index, part of the config id")
	for _, c := range []*cobra.Command{platformCreateCmd, platformUpdateCmd, platformSetTaxCmd} {
		c.Flags().String("tax", "", "tax rate, as a percentage or raw units")
	}
	for _, c := range []*cobra.Command{platformUpdateCmd, platformSetTaxCmd, platformShowCmd} {
		c.Flags().String("config", "", "platform config id")
	}
	platformCmd.AddCommand(platformCreateCmd, platformUpdateCmd, platformSetTaxCmd, platformShowCmd)

	referrerCreateCmd.Flags().String("referrer", "", "referring account")
	referrerCreateCmd.Flags().String("pool", "", "pool id")
	referrerShowCmd.Flags().String("referee", "", "referred account")
	referrerCmd.AddCommand(referrerCreateCmd, referrerShowCmd)

	fundCmd.Flags().String("token", "", "token id")
	fundCmd.Flags().String("owner", "", "account to credit")
	fundCmd.Flags().Uint64("amount", 0, "amount to credit")

	rootCmd.AddCommand(platformCmd, referrerCmd, fundCmd)
}
