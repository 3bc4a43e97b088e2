package cmd

// Options is the root for the CLI, struct tags are read by github.com/jessevdk/go-flags
type Options struct {
	Config string `short:"f" long:"config" description:"properties file with logging and data settings"`
	Data   string `short:"d" long:"data" description:"YAML/JSON document (path or URL) with the initial entries"`

	Repl *ReplCmd `command:"repl" description:"Interactive shell over the dict"`
	Exec *ExecCmd `command:"exec" description:"Run one shell command and print the reply"`
	Dump *DumpCmd `command:"dump" description:"Print the loaded dict"`
}

var current *Options

// Init instantiates the sub-command referenced by name so that go-flags can populate its fields.
func (o *Options) Init(name string) {
	switch name {
	case "repl":
		o.Repl = &ReplCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "dump":
		o.Dump = &DumpCmd{}
	}
}
