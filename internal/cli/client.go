package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/LeJamon/goShieldDEX/internal/crypto"
	nodegrpc "github.com/LeJamon/goShieldDEX/internal/grpc"
)

const (
	keyEnv      = "SHIELDD_KEY"
	callTimeout = 10 * time.Second
)

var errNoKey = errors.New("no signing key: pass --key or set " + keyEnv)

// signingKey returns the key given with --key or SHIELDD_KEY.
func signingKey() (*crypto.KeyPair, error) {
	s := keyHex
	if s == "" {
		s = os.Getenv(keyEnv)
	}
	if s == "" {
		return nil, errNoKey
	}
	return crypto.KeyPairFromHex(s)
}

// withClient dials the node and runs fn with a bounded context.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *nodegrpc.Client) error) error {
	c, err := nodegrpc.Dial(grpcAddress)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
	defer cancel()
	return fn(ctx, c)
}

// signAndSubmit signs t with the configured key, submits it and prints the
// engine outcome. A non-success result is returned as an error so the exit
// status reflects it.
func signAndSubmit(cmd *cobra.Command, t tx.Transaction) error {
	key, err := signingKey()
	if err != nil {
		return err
	}
	return withClient(cmd, func(ctx context.Context, c *nodegrpc.Client) error {
		if err := fillSequence(ctx, c, t, key); err != nil {
			return err
		}
		if err := tx.Sign(t, key); err != nil {
			return err
		}
		resp, err := c.Submit(ctx, t)
		if err != nil {
			return err
		}
		return reportSubmit(cmd, resp)
	})
}

// fillSequence sets the sequence of t from --sequence, or from the node
// when neither the flag nor the transaction carries one.
func fillSequence(ctx context.Context, c *nodegrpc.Client, t tx.Transaction, key *crypto.KeyPair) error {
	common := t.GetCommon()
	if sequence != 0 {
		common.Sequence = sequence
	}
	if common.Sequence != 0 {
		return nil
	}
	seq, err := c.AccountSequence(ctx, key.AccountID())
	if err != nil {
		return fmt.Errorf("fetch sequence: %w", err)
	}
	common.Sequence = seq
	return nil
}

func reportSubmit(cmd *cobra.Command, resp *nodegrpc.SubmitResponse) error {
	if err := printJSON(cmd.OutOrStdout(), resp); err != nil {
		return err
	}
	if !resp.Applied {
		return fmt.Errorf("transaction failed: %s", resp.Result)
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readInput returns the contents of path, or stdin when path is "-" or empty.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func flagHash(cmd *cobra.Command, name string) (types.Hash256, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return types.Hash256{}, fmt.Errorf("--%s is required", name)
	}
	h, err := types.ParseHash256(s)
	if err != nil {
		return h, fmt.Errorf("--%s: %w", name, err)
	}
	return h, nil
}

func flagAccount(cmd *cobra.Command, name string) (types.AccountID, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return types.AccountID{}, fmt.Errorf("--%s is required", name)
	}
	a, err := types.ParseAccountID(s)
	if err != nil {
		return a, fmt.Errorf("--%s: %w", name, err)
	}
	return a, nil
}

func flagToken(cmd *cobra.Command, name string) (types.TokenID, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return types.TokenID{}, fmt.Errorf("--%s is required", name)
	}
	t, err := types.ParseTokenID(s)
	if err != nil {
		return t, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}

// flagRate parses a rate flag given as a percentage ("0.3%") or as raw
// units of amount.Precision.
func flagRate(cmd *cobra.Command, name string) (uint64, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return 0, nil
	}
	r, err := amount.ParseRate(s)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return r, nil
}
