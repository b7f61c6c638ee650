package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// ModeDevelopment disables lookups of config files and other host state
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}
