package types

import (
	"context"

	"cosmossdk.io/math"
)

type QueryCoinsLeftRequest struct{}

type QueryCoinsLeftResponse struct {
	CoinsLeft math.Int `json:"coins_left"`
	Denom     string   `json:"denom"`
}

type QueryIsOracleRequest struct {
	Address string `json:"address"`
}

type QueryIsOracleResponse struct {
	IsOracle bool `json:"is_oracle"`
}

type QueryOraclesRequest struct{}

type QueryOraclesResponse struct {
	Oracles []string `json:"oracles"`
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryServer is the read-only surface of the allocations module.
type QueryServer interface {
	CoinsLeft(context.Context, *QueryCoinsLeftRequest) (*QueryCoinsLeftResponse, error)
	IsOracle(context.Context, *QueryIsOracleRequest) (*QueryIsOracleResponse, error)
	Oracles(context.Context, *QueryOraclesRequest) (*QueryOraclesResponse, error)
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
}
