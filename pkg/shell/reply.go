package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// Reply is the rendered result of one command
type Reply interface {
	String() string
}

type StatusReply struct {
	Status string
}

func (r *StatusReply) String() string {
	return r.Status
}

func MakeStatusReply(status string) *StatusReply {
	return &StatusReply{Status: status}
}

var okReply = &StatusReply{Status: "OK"}

func MakeOkReply() *StatusReply {
	return okReply
}

type NullReply struct{}

func (r *NullReply) String() string {
	return "(nil)"
}

func MakeNullReply() *NullReply {
	return &NullReply{}
}

type IntReply struct {
	Code int64
}

func (r *IntReply) String() string {
	return "(integer) " + strconv.FormatInt(r.Code, 10)
}

func MakeIntReply(code int64) *IntReply {
	return &IntReply{Code: code}
}

type ValueReply struct {
	Value interface{}
}

func (r *ValueReply) String() string {
	return formatValue(r.Value)
}

func MakeValueReply(val interface{}) *ValueReply {
	return &ValueReply{Value: val}
}

type MultiReply struct {
	Lines []string
}

func (r *MultiReply) String() string {
	if len(r.Lines) == 0 {
		return "(empty array)"
	}
	var sb strings.Builder
	for i, line := range r.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d) %s", i+1, line)
	}
	return sb.String()
}

func MakeMultiReply(lines []string) *MultiReply {
	return &MultiReply{Lines: lines}
}

// formatValue renders strings quoted so that a stored "" or "null" is told
// apart from a stored nil
func formatValue(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return "null"
	case string:
		return quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func quote(s string) string {
	return strconv.Quote(s)
}
