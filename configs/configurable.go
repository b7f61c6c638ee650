package configs

// Configurable is implemented by values that may be set from config files.
type Configurable interface {
	ConfigExpr() string
}
