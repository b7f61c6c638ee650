package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fancyip/expands"
	"github.com/reusee/fancyip/fancyconfigs"
	"github.com/reusee/fancyip/starlarks"
)

type Module struct {
	dscope.Module
	Expands      expands.Module
	Starlarks    starlarks.Module
	FancyConfigs fancyconfigs.Module
}
