package usecases

import "context"

type GetStatsExecutor interface {
	Execute(ctx context.Context, query GetStatsQuery) (*GetStatsResult, error)
}

type GetTrendExecutor interface {
	Execute(ctx context.Context, query GetTrendQuery) (*GetTrendResult, error)
}
