package valid

import (
	"fmt"
	"strings"

	language "github.com/hanpama/graphcfg/internal/language"
)

// Cause is a single diagnostic produced while lowering a document.
type Cause struct {
	Message string   `json:"message"`
	Trace   []string `json:"trace,omitempty"`
	File    string   `json:"file,omitempty"`
	Line    int      `json:"line,omitempty"`
	Column  int      `json:"column,omitempty"`
}

func (c *Cause) String() string {
	var b strings.Builder
	if len(c.Trace) > 0 {
		b.WriteString("[" + strings.Join(c.Trace, ", ") + "] ")
	}
	b.WriteString(c.Message)
	if c.Line > 0 {
		fmt.Fprintf(&b, " %s:%d:%d", c.File, c.Line, c.Column)
	}
	return b.String()
}

// ValidationError is the ordered, non-empty set of causes of a failed pass.
type ValidationError []*Cause

func (e ValidationError) Error() string {
	msg := "validation failed:\n"
	for _, c := range e {
		msg += "- " + c.String() + "\n"
	}
	return msg
}

func causeAt(message string, pos *language.Position) *Cause {
	c := &Cause{Message: message}
	if pos != nil {
		c.Line = pos.Line
		c.Column = pos.Column
		if pos.Src != nil {
			c.File = pos.Src.Name
		}
	}
	return c
}

func (c *Cause) traced(label string) *Cause {
	trace := make([]string, 0, len(c.Trace)+1)
	trace = append(trace, label)
	trace = append(trace, c.Trace...)
	cp := *c
	cp.Trace = trace
	return &cp
}
