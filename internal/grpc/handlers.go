package grpc

import (
	"context"
	"encoding/json"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/storage/relationaldb"
)

// Submit decodes and applies a transaction. A transaction the engine
// rejects is not a call failure: its result is in the response.
func (s *Server) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	t, err := tx.FromJSON(req.Transaction)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decode transaction: %v", err)
	}
	res, err := s.ledgerService.Submit(ctx, t)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &SubmitResponse{
		Result:  res.Result.String(),
		Code:    int(res.Result),
		Applied: res.Applied,
		Hash:    res.Hash,
		Message: res.Message,
	}
	if res.Metadata != nil {
		meta, err := json.Marshal(res.Metadata)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "encode metadata: %v", err)
		}
		resp.Metadata = meta
	}
	return resp, nil
}

// GetPool returns a pool with its escrow reserves and share supply.
func (s *Server) GetPool(_ context.Context, req *GetPoolRequest) (*PoolResponse, error) {
	p, err := s.ledgerService.GetPool(req.Pool)
	if err != nil {
		return nil, toStatus(err)
	}
	escrow, err := keylet.EscrowAuthority(req.Pool)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &PoolResponse{
		Pool:        req.Pool,
		Authority:   p.Authority,
		ShareToken:  p.ShareToken,
		AssetA:      p.AssetA,
		AssetB:      p.AssetB,
		ReferralFee: p.ReferralFee,
		LPFee:       p.LPFee,
		TaxConfig:   p.TaxConfig,
		State:       p.State.String(),
		AccruedFeeA: p.AccruedFeeA,
		AccruedFeeB: p.AccruedFeeB,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if resp.ReserveA, err = s.ledgerService.Balance(p.AssetA, escrow); err != nil {
		return nil, toStatus(err)
	}
	if resp.ReserveB, err = s.ledgerService.Balance(p.AssetB, escrow); err != nil {
		return nil, toStatus(err)
	}
	if resp.Supply, err = s.ledgerService.Supply(p.ShareToken); err != nil {
		return nil, toStatus(err)
	}
	return resp, nil
}

func (s *Server) GetPlatformConfig(_ context.Context, req *GetPlatformConfigRequest) (*PlatformConfigResponse, error) {
	c, err := s.ledgerService.GetPlatformConfig(req.Config)
	if err != nil {
		return nil, toStatus(err)
	}
	return &PlatformConfigResponse{
		Config:    req.Config,
		Tax:       c.Tax,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func (s *Server) GetReferrer(_ context.Context, req *GetReferrerRequest) (*ReferrerResponse, error) {
	r, err := s.ledgerService.GetReferrer(req.Referee)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ReferrerResponse{Owner: r.Owner, Referee: r.Referee, Pool: r.Pool}, nil
}

func (s *Server) GetBalance(_ context.Context, req *GetBalanceRequest) (*BalanceResponse, error) {
	bal, err := s.ledgerService.Balance(req.Token, req.Owner)
	if err != nil {
		return nil, toStatus(err)
	}
	return &BalanceResponse{Balance: bal}, nil
}

func (s *Server) GetAccount(_ context.Context, req *GetAccountRequest) (*AccountResponse, error) {
	seq, err := s.ledgerService.AccountSequence(req.Account)
	if err != nil {
		return nil, toStatus(err)
	}
	return &AccountResponse{Account: req.Account, Sequence: seq}, nil
}

// QuoteSwap prices a swap without applying it.
func (s *Server) QuoteSwap(_ context.Context, req *QuoteSwapRequest) (*QuoteSwapResponse, error) {
	q, err := s.ledgerService.QuoteSwap(req.Pool, req.Bid, req.Ask, req.BidAmount)
	if err != nil {
		return nil, toStatus(err)
	}
	return &QuoteSwapResponse{Fee: q.Fee, Tax: q.Tax, NetBid: q.NetBid, AskAmount: q.AskAmount}, nil
}

// Fund credits a balance. It is refused unless the server allows it.
func (s *Server) Fund(_ context.Context, req *FundRequest) (*FundResponse, error) {
	if !s.config.AllowFund {
		return nil, status.Error(codes.PermissionDenied, "funding is disabled on this node")
	}
	if err := s.ledgerService.Fund(req.Token, req.Owner, req.Amount); err != nil {
		return nil, toStatus(err)
	}
	bal, err := s.ledgerService.Balance(req.Token, req.Owner)
	if err != nil {
		return nil, toStatus(err)
	}
	return &FundResponse{Balance: bal}, nil
}

// ListJournal returns journaled transactions of an account or a pool.
func (s *Server) ListJournal(ctx context.Context, req *ListJournalRequest) (*ListJournalResponse, error) {
	if s.journal == nil {
		return nil, status.Error(codes.Unavailable, "journal is not enabled")
	}
	if (req.Account == nil) == (req.Pool == nil) {
		return nil, status.Error(codes.InvalidArgument, "exactly one of account and pool is required")
	}

	var (
		entries []*relationaldb.Entry
		err     error
	)
	if req.Account != nil {
		entries, err = s.journal.ListByAccount(ctx, *req.Account, req.Limit)
	} else {
		entries, err = s.journal.ListByPool(ctx, *req.Pool, req.Limit)
	}
	if errors.Is(err, relationaldb.ErrInvalidLimit) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &ListJournalResponse{Entries: make([]JournalEntry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, journalEntry(e))
	}
	return resp, nil
}
