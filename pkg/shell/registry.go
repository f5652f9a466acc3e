package shell

import "context"

// Action tells the loop whether to read another line.
type Action int

const (
	Continue Action = iota
	Stop
)

func (a Action) String() string {
	if a == Stop {
		return "stop"
	}
	return "continue"
}

// BuiltinFunc receives the full argument vector, name included.
type BuiltinFunc func(ctx context.Context, args []string, s *Shell) Action

type Builtin struct {
	Name    string
	Usage   string
	Summary string
	Run     BuiltinFunc
}

// Registry is an ordered, read-only builtin table.
type Registry struct {
	builtins []Builtin
}

func NewRegistry(builtins ...Builtin) *Registry {
	return &Registry{
		builtins: append([]Builtin(nil), builtins...),
	}
}

// Lookup returns the first builtin declared with exactly this name.
func (r *Registry) Lookup(name string) (Builtin, bool) {
	if r == nil {
		return Builtin{}, false
	}

	for _, b := range r.builtins {
		if b.Name == name {
			return b, true
		}
	}

	return Builtin{}, false
}

// All returns a copy of the table in declaration order.
func (r *Registry) All() []Builtin {
	if r == nil {
		return nil
	}
	return append([]Builtin(nil), r.builtins...)
}

func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, 0, len(all))
	for _, b := range all {
		names = append(names, b.Name)
	}
	return names
}
