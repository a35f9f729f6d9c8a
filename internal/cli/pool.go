package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/amm"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	nodegrpc "github.com/LeJamon/goShieldDEX/internal/grpc"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Create, fund, trade and administer pools",
}

var poolInitializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Create a pool and make its first deposit",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		a, err := flagToken(cmd, "asset-a")
		if err != nil {
			return err
		}
		b, err := flagToken(cmd, "asset-b")
		if err != nil {
			return err
		}
		cfg, err := flagHash(cmd, "platform-config")
		if err != nil {
			return err
		}
		lpFee, err := flagRate(cmd, "lp-fee")
		if err != nil {
			return err
		}
		referralFee, err := flagRate(cmd, "referral-fee")
		if err != nil {
			return err
		}

		t := amm.NewInitialize(key.AccountID(), a, b, cfg)
		t.AmountA, _ = cmd.Flags().GetUint64("amount-a")
		t.AmountB, _ = cmd.Flags().GetUint64("amount-b")
		t.Nonce, _ = cmd.Flags().GetUint32("nonce")
		t.CustomFeeAmount, _ = cmd.Flags().GetUint64("custom-fee")
		t.LPFee = lpFee
		t.ReferralFee = referralFee

		cmd.PrintErrf("pool: %s\n", t.PoolID())
		return signAndSubmit(cmd, t)
	},
}

// poolAssets reads the pool to learn its asset pair.
func poolAssets(cmd *cobra.Command, pool types.Hash256) (*nodegrpc.PoolResponse, error) {
	var resp *nodegrpc.PoolResponse
	err := withClient(cmd, func(ctx context.Context, c *nodegrpc.Client) error {
		var err error
		resp, err = c.GetPool(ctx, pool)
		return err
	})
	return resp, err
}

var poolDepositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Add liquidity to a pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		p, err := poolAssets(cmd, id)
		if err != nil {
			return err
		}
		a, _ := cmd.Flags().GetUint64("amount-a")
		b, _ := cmd.Flags().GetUint64("amount-b")
		return signAndSubmit(cmd, amm.NewAddLiquidity(key.AccountID(), id, p.AssetA, p.AssetB, a, b))
	},
}

var poolWithdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Burn shares and withdraw both assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		p, err := poolAssets(cmd, id)
		if err != nil {
			return err
		}
		shares, _ := cmd.Flags().GetUint64("shares")
		return signAndSubmit(cmd, amm.NewRemoveLiquidity(key.AccountID(), id, p.AssetA, p.AssetB, shares))
	},
}

// swapSides resolves the ask asset from the pool pair and the bid asset.
func swapSides(p *nodegrpc.PoolResponse, bid types.TokenID) types.TokenID {
	if bid == p.AssetA {
		return p.AssetB
	}
	return p.AssetA
}

var poolSwapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Sell one pool asset for the other",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		bid, err := flagToken(cmd, "bid")
		if err != nil {
			return err
		}
		p, err := poolAssets(cmd, id)
		if err != nil {
			return err
		}
		v, _ := cmd.Flags().GetUint64("amount")
		minAsk, _ := cmd.Flags().GetUint64("min-ask")
		return signAndSubmit(cmd, amm.NewSwap(key.AccountID(), id, bid, swapSides(p, bid), v, minAsk))
	},
}

var poolQuoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a swap without submitting it",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		bid, err := flagToken(cmd, "bid")
		if err != nil {
			return err
		}
		p, err := poolAssets(cmd, id)
		if err != nil {
			return err
		}
		v, _ := cmd.Flags().GetUint64("amount")
		return withClient(cmd, func(ctx context.Context, c *nodegrpc.Client) error {
			q, err := c.QuoteSwap(ctx, &nodegrpc.QuoteSwapRequest{
				Pool:      id,
				Bid:       bid,
				Ask:       swapSides(p, bid),
				BidAmount: v,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), q)
		})
	},
}

var poolShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a pool with its reserves and share supply",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		p, err := poolAssets(cmd, id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), struct {
			*nodegrpc.PoolResponse
			LPFeeRate       string `json:"lp_fee_rate"`
			ReferralFeeRate string `json:"referral_fee_rate"`
		}{p, amount.FormatRate(p.LPFee), amount.FormatRate(p.ReferralFee)})
	},
}

var poolPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Stop deposits, withdrawals and swaps on a pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		return signAndSubmit(cmd, amm.NewPause(key.AccountID(), id))
	},
}

var poolResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Reopen a paused pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		return signAndSubmit(cmd, amm.NewResume(key.AccountID(), id))
	},
}

var poolSetFeeCmd = &cobra.Command{
	Use:   "set-fee",
	Short: "Change the LP fee of a pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		fee, err := flagRate(cmd, "fee")
		if err != nil {
			return err
		}
		return signAndSubmit(cmd, amm.NewUpdateFee(key.AccountID(), id, fee))
	},
}

var poolSetReferralFeeCmd = &cobra.Command{
	Use:   "set-referral-fee",
	Short: "Change the referral fee of a pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		fee, err := flagRate(cmd, "fee")
		if err != nil {
			return err
		}
		return signAndSubmit(cmd, amm.NewUpdateReferralFee(key.AccountID(), id, fee))
	},
}

var poolTransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Hand pool authority to another account",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		owner, err := flagAccount(cmd, "new-owner")
		if err != nil {
			return err
		}
		return signAndSubmit(cmd, amm.NewTransferOwnership(key.AccountID(), id, owner))
	},
}

var poolDistributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Pay out accrued LP fees",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := signingKey()
		if err != nil {
			return err
		}
		id, err := flagHash(cmd, "pool")
		if err != nil {
			return err
		}
		recA, err := flagAccount(cmd, "recipient-a")
		if err != nil {
			return err
		}
		recB, err := flagAccount(cmd, "recipient-b")
		if err != nil {
			return err
		}
		a, _ := cmd.Flags().GetUint64("amount-a")
		b, _ := cmd.Flags().GetUint64("amount-b")
		return signAndSubmit(cmd, amm.NewDistributeLPFee(key.AccountID(), id, a, b, recA, recB))
	},
}

func init() {
	f := poolInitializeCmd.Flags()
	f.String("asset-a", "", "first asset token id")
	f.String("asset-b", "", "second asset token id")
	f.String("platform-config", "", "platform config id supplying the tax rate")
	f.Uint64("amount-a", 0, "initial deposit of asset A")
	f.Uint64("amount-b", 0, "initial deposit of asset B")
	f.Uint32("nonce", 0, "distinguishes pools over the same pair by the same creator")
	f.String("lp-fee", "0.3%", "LP fee rate, as a percentage or raw units")
	f.String("referral-fee", "", "referral fee rate, as a percentage or raw units")
	f.Uint64("custom-fee", 0, "side payment for an LP fee above the custom fee bound")

	for _, c := range []*cobra.Command{
		poolDepositCmd, poolWithdrawCmd, poolSwapCmd, poolQuoteCmd, poolShowCmd,
		poolPauseCmd, poolResumeCmd, poolSetFeeCmd, poolSetReferralFeeCmd,
		poolTransferCmd, poolDistributeCmd,
	} {
		c.Flags().String("pool", "", "pool id")
	}
	poolDepositCmd.Flags().Uint64("amount-a", 0, "amount of asset A to deposit")
	poolDepositCmd.Flags().Uint64("amount-b", 0, "amount of asset B to deposit")
	poolWithdrawCmd.Flags().Uint64("shares", 0, "shares to burn")
	for _, c := range []*cobra.Command{poolSwapCmd, poolQuoteCmd} {
		c.Flags().String("bid", "", "token id of the asset sold")
		c.Flags().Uint64("amount", 0, "amount sold")
	}
	poolSwapCmd.Flags().Uint64("min-ask", 0, "minimum amount bought, or the swap fails")
	for _, c := range []*cobra.Command{poolSetFeeCmd, poolSetReferralFeeCmd} {
		c.Flags().String("fee", "", "new rate, as a percentage or raw units")
	}
	poolTransferCmd.Flags().String("new-owner", "", "account receiving authority")
	poolDistributeCmd.Flags().Uint64("amount-a", 0, "accrued asset A fees to pay")
	poolDistributeCmd.Flags().Uint64("amount-b", 0, "accrued asset B fees to pay")
	poolDistributeCmd.Flags().String("recipient-a", "", "account receiving asset A fees")
	poolDistributeCmd.Flags().String("recipient-b", "", "account receiving asset B fees")

	poolCmd.AddCommand(
		poolInitializeCmd, poolDepositCmd, poolWithdrawCmd, poolSwapCmd,
		poolPauseCmd, poolResumeCmd, poolSetFeeCmd, poolSetReferralFeeCmd,
		poolTransferCmd, poolDistributeCmd, poolShowCmd, poolQuoteCmd,
	)
	rootCmd.AddCommand(poolCmd)
}
