package expands

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fancyip/fancyconfigs"
	"github.com/reusee/fancyip/logs"
	"github.com/reusee/fancyip/renders"
)

type Module struct {
	dscope.Module
	FancyConfigs fancyconfigs.Module
	Logs         logs.Module
}

func (Module) Expander(
	qualifier fancyconfigs.Qualifier,
	macroPackage fancyconfigs.MacroPackage,
	logger logs.Logger,
) Expander {
	return Expander{
		MacroPackage: string(macroPackage),
		Renderer: renders.Renderer{
			Qualifier: string(qualifier),
		},
		Logger: logger,
	}
}
