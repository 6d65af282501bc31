package bootstrap

import (
	"errors"
	"strings"
)

// call records one Runner invocation for assertions.
type call struct {
	dir  string
	name string
	args []string
}

func (c call) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// fakeRunner satisfies Runner without spawning subprocesses. Commands fail
// when their rendered form matches an entry in failOn.
type fakeRunner struct {
	calls  []call
	failOn map[string]string // command prefix -> output to return with the error
	output map[string]string // command prefix -> output on success
}

func (f *fakeRunner) Run(dir string, name string, args ...string) (string, error) {
	c := call{dir: dir, name: name, args: args}
	f.calls = append(f.calls, c)

	rendered := c.String()
	for prefix, out := range f.failOn {
		if strings.HasPrefix(rendered, prefix) {
			return out, errors.New("exit status 1")
		}
	}
	for prefix, out := range f.output {
		if strings.HasPrefix(rendered, prefix) {
			return out, nil
		}
	}
	return "", nil
}

func (f *fakeRunner) commands() []string {
	var rendered []string
	for _, c := range f.calls {
		rendered = append(rendered, c.String())
	}
	return rendered
}

func (f *fakeRunner) ran(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c.String(), prefix) {
			return true
		}
	}
	return false
}
