package domain

import "strings"

// Command is an external program invocation.
type Command struct {
	// Dir is the working directory; empty means the current one.
	Dir string
	// Args holds the program followed by its arguments.
	Args []string
	// Env overrides variables on top of the allow-listed system environment.
	Env map[string]string
}

// String renders the command line for logs.
func (c *Command) String() string {
	return strings.Join(c.Args, " ")
}
