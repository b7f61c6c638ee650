package starlarks

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

func (Module) Runner(
	qualifier fancyconfigs.Qualifier,
	importPath fancyconfigs.ImportPath,
	logger logs.Logger,
) Runner {
	return Runner{
		Renderer: renders.Renderer{
			Qualifier: string(qualifier),
		},
		ImportPath: string(importPath),
		Logger:     logger,
	}
}
