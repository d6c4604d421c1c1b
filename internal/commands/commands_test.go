package commands

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(ran *string, axis *bool) *Registry {
	r := NewRegistry()
	for _, name := range []string{"run", "list"} {
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(new(bytes.Buffer))
		fs.BoolVar(axis, "axis", false, "include the axis reference")
		r.Register(name, name+" the scene", fs, func() error {
			*ran = name
			return nil
		})
	}
	r.SetDefault("run")
	return r
}

func TestExecute(t *testing.T) {
	var ran string
	var axis bool
	r := newTestRegistry(&ran, &axis)

	require.NoError(t, r.Execute([]string{"list", "-axis"}))
	assert.Equal(t, "list", ran)
	assert.True(t, axis)
}

func TestExecuteDefault(t *testing.T) {
	var ran string
	var axis bool
	r := newTestRegistry(&ran, &axis)

	require.NoError(t, r.Execute(nil))
	assert.Equal(t, "run", ran)

	ran = ""
	require.NoError(t, r.Execute([]string{"-axis"}))
	assert.Equal(t, "run", ran)
	assert.True(t, axis)
}

func TestExecuteErrors(t *testing.T) {
	var ran string
	var axis bool
	r := newTestRegistry(&ran, &axis)

	err := r.Execute([]string{"paint"})
	assert.True(t, errors.Is(err, ErrUnknown))
	assert.Error(t, r.Execute([]string{"list", "-nope"}))

	assert.Error(t, NewRegistry().Execute(nil))

	failing := NewRegistry()
	boom := errors.New("boom")
	failing.Register("x", "", flag.NewFlagSet("x", flag.ContinueOnError), func() error { return boom })
	assert.ErrorIs(t, failing.Execute([]string{"x"}), boom)
}

func TestUsage(t *testing.T) {
	var ran string
	var axis bool
	r := newTestRegistry(&ran, &axis)

	var buf bytes.Buffer
	r.Usage(&buf)
	assert.Equal(t, []string{"list", "run"}, r.Names())
	assert.Equal(t, "  list     list the scene\n  run      run the scene (default)\n", buf.String())
}
