package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/allocnet/chain/x/allocations/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return queryServer{Keeper: keeper}
}

// CoinsLeft queries the unallocated part of the reward pool
func (k queryServer) CoinsLeft(goCtx context.Context, req *types.QueryCoinsLeftRequest) (*types.QueryCoinsLeftResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	return &types.QueryCoinsLeftResponse{
		CoinsLeft: k.GetCoinsLeft(goCtx),
		Denom:     k.GetParams(goCtx).RewardDenom,
	}, nil
}

// IsOracle queries whether an address may submit claims
func (k queryServer) IsOracle(goCtx context.Context, req *types.QueryIsOracleRequest) (*types.QueryIsOracleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.Address == "" {
		return nil, status.Error(codes.InvalidArgument, "address cannot be empty")
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return &types.QueryIsOracleResponse{IsOracle: k.Keeper.IsOracle(goCtx, addr)}, nil
}

// Oracles queries the current oracle set
func (k queryServer) Oracles(goCtx context.Context, req *types.QueryOraclesRequest) (*types.QueryOraclesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	oracles := k.GetOracles(goCtx)
	out := make([]string, len(oracles))
	for i, oracle := range oracles {
		out[i] = oracle.String()
	}
	return &types.QueryOraclesResponse{Oracles: out}, nil
}

func (k queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	return &types.QueryParamsResponse{Params: k.GetParams(goCtx)}, nil
}
