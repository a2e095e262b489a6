package domain

type Ternary int

const (
	False Ternary = iota
	True
	Partial
)

func (t Ternary) String() string {
	switch t {
	case True:
		return "true"
	case Partial:
		return "partial"
	default:
		return "false"
	}
}

func (t Ternary) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
