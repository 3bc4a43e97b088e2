package shell

import (
	"strings"

	"github.com/xuning888/safedict/pkg/datastruct/dict"
)

type execFunc func(d dict.Dict, args []token) (Reply, error)

var cmdTable = make(map[string]*command)

// arity counts the command name, a negative arity is a minimum
type command struct {
	cmdName string
	exeFunc execFunc
	arity   int
}

func registerCmd(cmdName string, exeFunc execFunc, arity int) {
	lower := strings.ToLower(cmdName)
	cmdTable[lower] = &command{
		cmdName: lower,
		exeFunc: exeFunc,
		arity:   arity,
	}
}

func getCommand(cmdName string) *command {
	cmd, ok := cmdTable[strings.ToLower(cmdName)]
	if ok {
		return cmd
	}
	return nil
}

func (c *command) validArity(argNum int) bool {
	if c.arity >= 0 {
		return argNum == c.arity
	}
	return argNum >= -c.arity
}

func init() {
	registerCmd("get", execGet, 2)
	registerCmd("set", execSet, 3)
	registerCmd("has", execHas, 2)
	registerCmd("del", execDel, -2)
	registerCmd("keys", execKeys, -1)
	registerCmd("values", execValues, 1)
	registerCmd("items", execItems, 1)
	registerCmd("len", execLen, 1)
	registerCmd("dump", execDump, 1)
}
