package literals

type Kind uint8

const (
	Invalid Kind = iota
	Boolean
	Integer
	Float
	Imaginary
	Character
	String
	Byte
	ByteSequence
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Imaginary:
		return "imaginary"
	case Character:
		return "character"
	case String:
		return "string"
	case Byte:
		return "byte"
	case ByteSequence:
		return "byte string"
	}
	return "invalid"
}
