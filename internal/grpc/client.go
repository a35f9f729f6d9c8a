package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// Client calls the node service.
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to a node. Connections are plaintext unless opts carry
// transport credentials.
func Dial(address string, opts ...grpc.DialOption) (*Client, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}
	conn, err := grpc.NewClient(address, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}) error {
	return c.conn.Invoke(ctx, fullMethod(method), req, resp, grpc.CallContentSubtype(CodecName))
}

// Submit sends a transaction in its JSON form.
func (c *Client) Submit(ctx context.Context, t tx.Transaction) (*SubmitResponse, error) {
	body, err := tx.ToJSON(t)
	if err != nil {
		return nil, err
	}
	return c.SubmitJSON(ctx, body)
}

// SubmitJSON sends an already encoded transaction.
func (c *Client) SubmitJSON(ctx context.Context, body []byte) (*SubmitResponse, error) {
	resp := new(SubmitResponse)
	if err := c.invoke(ctx, "Submit", &SubmitRequest{Transaction: body}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetPool(ctx context.Context, pool types.Hash256) (*PoolResponse, error) {
	resp := new(PoolResponse)
	if err := c.invoke(ctx, "GetPool", &GetPoolRequest{Pool: pool}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetPlatformConfig(ctx context.Context, config types.Hash256) (*PlatformConfigResponse, error) {
	resp := new(PlatformConfigResponse)
	if err := c.invoke(ctx, "GetPlatformConfig", &GetPlatformConfigRequest{Config: config}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetReferrer(ctx context.Context, referee types.AccountID) (*ReferrerResponse, error) {
	resp := new(ReferrerResponse)
	if err := c.invoke(ctx, "GetReferrer", &GetReferrerRequest{Referee: referee}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetBalance(ctx context.Context, token types.TokenID, owner types.AccountID) (uint64, error) {
	resp := new(BalanceResponse)
	if err := c.invoke(ctx, "GetBalance", &GetBalanceRequest{Token: token, Owner: owner}, resp); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

// AccountSequence returns the sequence to put in the account's next transaction.
func (c *Client) AccountSequence(ctx context.Context, account types.AccountID) (uint32, error) {
	resp := new(AccountResponse)
	if err := c.invoke(ctx, "GetAccount", &GetAccountRequest{Account: account}, resp); err != nil {
		return 0, err
	}
	return resp.Sequence, nil
}

func (c *Client) QuoteSwap(ctx context.Context, req *QuoteSwapRequest) (*QuoteSwapResponse, error) {
	resp := new(QuoteSwapResponse)
	if err := c.invoke(ctx, "QuoteSwap", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Fund(ctx context.Context, token types.TokenID, owner types.AccountID, v uint64) (uint64, error) {
	resp := new(FundResponse)
	if err := c.invoke(ctx, "Fund", &FundRequest{Token: token, Owner: owner, Amount: v}, resp); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (c *Client) ListJournal(ctx context.Context, req *ListJournalRequest) (*ListJournalResponse, error) {
	resp := new(ListJournalResponse)
	if err := c.invoke(ctx, "ListJournal", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
