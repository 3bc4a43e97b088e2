package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuning888/safedict/pkg/datastruct/dict"
	"github.com/xuning888/safedict/pkg/logger"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrWrongArgs        = errors.New("wrong number of arguments")
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrUnbalancedQuotes = errors.New("unbalanced quotes")
)

// Shell runs text commands against a single dict
type Shell struct {
	d      dict.Dict
	prompt string
}

func New(d dict.Dict) *Shell {
	return &Shell{d: d}
}

// WithPrompt sets the prompt written before each line in Run
func (s *Shell) WithPrompt(prompt string) *Shell {
	s.prompt = prompt
	return s
}

// Exec runs one command line. An empty line returns an empty reply.
func (s *Shell) Exec(line string) (string, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return "", err
	}
	return s.execTokens(tokens)
}

// ExecArgs runs a command already split into arguments, as handed over by
// a command line. Values are read the same way as unquoted shell input.
func (s *Shell) ExecArgs(args ...string) (string, error) {
	tokens := make([]token, len(args))
	for i, arg := range args {
		tokens[i] = token{text: arg}
	}
	return s.execTokens(tokens)
}

func (s *Shell) execTokens(tokens []token) (string, error) {
	if len(tokens) == 0 {
		return "", nil
	}
	cmdName := strings.ToLower(tokens[0].text)
	cmd := getCommand(cmdName)
	if cmd == nil {
		return "", fmt.Errorf("%w '%s'", ErrUnknownCommand, tokens[0].text)
	}
	if !cmd.validArity(len(tokens)) {
		return "", wrongArgs(cmd.cmdName)
	}
	if logger.IsEnabledDebug() {
		logger.DebugF("exec %s with %d args", cmd.cmdName, len(tokens)-1)
	}
	reply, err := cmd.exeFunc(s.d, tokens[1:])
	if err != nil {
		return "", err
	}
	return reply.String(), nil
}

// Run reads commands from r until EOF, quit or ctx is done. Command errors
// are written to w and do not stop the loop.
func (s *Shell) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			if _, err := io.WriteString(w, s.prompt); err != nil {
				return err
			}
		}
		// ReadString has no line length limit, a long SET value is still one command
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		line := strings.TrimSpace(raw)
		if line != "" {
			switch strings.ToLower(line) {
			case "quit", "exit":
				return nil
			}
			reply, err := s.Exec(line)
			if err != nil {
				logger.WarnF("command %q failed: %v", line, err)
				reply = "(error) ERR " + err.Error()
			}
			if _, err := fmt.Fprintln(w, reply); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

func wrongArgs(cmdName string) error {
	return fmt.Errorf("%w for '%s' command", ErrWrongArgs, cmdName)
}
