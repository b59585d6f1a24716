package app

import (
	"context"

	"github.com/alexanderramin/carga/internal/domain"
)

type RecomputePERUseCase interface {
	RecomputePER(ctx context.Context, req PERRequest) (*PERResponse, error)
}

type StatisticsUseCase interface {
	Statistics(ctx context.Context, req StatsRequest) (*StatsResponse, error)
}

type StandardSizesUseCase interface {
	StandardSizes(ctx context.Context) (*StandardSizeReport, error)
}

type DedicateUseCase interface {
	SetDedication(ctx context.Context, nrc, professorID string, pct float64) (*domain.Section, error)
}
