package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
)

// ErrUnknown is returned by Execute for a name that was never registered.
var ErrUnknown = errors.New("unknown command")

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds     map[string]*Command
	fallback string
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after
// fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// SetDefault names the command Execute runs when args is empty or starts with a flag.
func (r *Registry) SetDefault(name string) {
	r.fallback = name
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments
// (typically os.Args[1:]). Returns an error for an unknown command, a parse error, or from Run.
func (r *Registry) Execute(args []string) error {
	if (len(args) == 0 || len(args[0]) > 0 && args[0][0] == '-') && r.fallback != "" {
		args = append([]string{r.fallback}, args...)
	}
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run()
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Usage writes one line per command to w.
func (r *Registry) Usage(w io.Writer) {
	for _, n := range r.Names() {
		c := r.cmds[n]
		mark := ""
		if n == r.fallback {
			mark = " (default)"
		}
		fmt.Fprintf(w, "  %-8s %s%s\n", n, c.Summary, mark)
	}
}
