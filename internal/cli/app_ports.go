package cli

import (
	"github.com/alexanderramin/carga/internal/app"
	"github.com/charmbracelet/huh"
)

func (a *App) recomputePERUseCase() app.RecomputePERUseCase {
	if a.RecomputePER != nil {
		return a.RecomputePER
	}
	return a.Workload
}

func (a *App) statisticsUseCase() app.StatisticsUseCase {
	if a.Statistics != nil {
		return a.Statistics
	}
	return a.Workload
}

func (a *App) standardSizesUseCase() app.StandardSizesUseCase {
	if a.StandardSizes != nil {
		return a.StandardSizes
	}
	return a.Workload
}

func (a *App) dedicateUseCase() app.DedicateUseCase {
	if a.Dedicate != nil {
		return a.Dedicate
	}
	return a.Sections
}

func (a *App) isInteractive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}
