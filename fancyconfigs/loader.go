package fancyconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/fancyip/configs"
	"github.com/reusee/fancyip/logs"
	"github.com/reusee/fancyip/modes"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"fancyip.cue",
	".fancyip.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, Schema)
	}

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	var dirs []string
	// working directory
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, Schema)
}
