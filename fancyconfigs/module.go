package fancyconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fancyip/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
