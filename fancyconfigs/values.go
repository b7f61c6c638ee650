package fancyconfigs

import (
	"github.com/fatih/color"
	"github.com/reusee/fancyip/cmds"
	"github.com/reusee/fancyip/configs"
	"github.com/reusee/fancyip/logs"
	"github.com/reusee/fancyip/modes"
	"github.com/reusee/fancyip/vars"
)

const (
	DefaultQualifier    = "fancyip"
	DefaultMacroPackage = "fancyip"
	DefaultImportPath   = "github.com/reusee/fancyip"
)

var sources = []string{"flag", "config", "default"}

// pick returns the first non-zero of flag, config and default, logging where it came from.
func pick[T comparable](logger logs.Logger, name string, flag, config, def T) T {
	value, i := vars.FirstNonZero(flag, config, def)
	if i >= 0 {
		logger.Debug("setting", "name", name, "value", value, "source", sources[i])
	}
	return value
}

// Qualifier is the package identifier of generated constructor calls.
type Qualifier string

var _ configs.Configurable = Qualifier("")

func (Qualifier) ConfigExpr() string {
	return "qualifier"
}

var qualifierFlag = cmds.Var[string]("-qualifier", "package identifier used in generated code")

func (Module) Qualifier(
	loader configs.Loader,
	logger logs.Logger,
) Qualifier {
	return pick(logger, "qualifier",
		Qualifier(*qualifierFlag),
		configs.First[Qualifier](loader, Qualifier("").ConfigExpr()),
		DefaultQualifier,
	)
}

// MacroPackage is the identifier whose selector calls are expanded.
type MacroPackage string

var _ configs.Configurable = MacroPackage("")

func (MacroPackage) ConfigExpr() string {
	return "macro_package"
}

var macroPackageFlag = cmds.Var[string]("-macro-package", "package identifier of the calls to expand")

func (Module) MacroPackage(
	loader configs.Loader,
	logger logs.Logger,
) MacroPackage {
	return pick(logger, "macro package",
		MacroPackage(*macroPackageFlag),
		configs.First[MacroPackage](loader, MacroPackage("").ConfigExpr()),
		DefaultMacroPackage,
	)
}

// ImportPath is imported by generated files.
type ImportPath string

var _ configs.Configurable = ImportPath("")

func (ImportPath) ConfigExpr() string {
	return "import_path"
}

var importPathFlag = cmds.Var[string]("-import-path", "import path of the runtime package in generated files")

func (Module) ImportPath(
	loader configs.Loader,
	logger logs.Logger,
) ImportPath {
	return pick(logger, "import path",
		ImportPath(*importPathFlag),
		configs.First[ImportPath](loader, ImportPath("").ConfigExpr()),
		DefaultImportPath,
	)
}

// Color enables colored diagnostics.
type Color bool

var _ configs.Configurable = Color(false)

func (Color) ConfigExpr() string {
	return "color"
}

var noColorFlag = cmds.Switch("-no-color", "disable colored diagnostics")

func (Module) Color(
	loader configs.Loader,
	mode modes.Mode,
) Color {
	if mode == modes.ModeDevelopment || *noColorFlag {
		return false
	}
	if v := configs.First[*bool](loader, Color(false).ConfigExpr()); v != nil {
		return Color(*v)
	}
	return Color(!color.NoColor)
}
