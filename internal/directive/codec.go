// Package directive decodes schema directives into configuration fragments.
//
// A fragment type declares the directive it comes from by implementing Codec.
// Decode turns the arguments of exactly one directive into a fragment; a
// Registry dispatches the directives attached to a node to the decoders
// registered under their names.
package directive

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
	"github.com/go-viper/mapstructure/v2"

	language "github.com/hanpama/graphcfg/internal/language"
	"github.com/hanpama/graphcfg/internal/valid"
)

// Codec is implemented by configuration fragments that originate from a
// single directive.
type Codec interface {
	DirectiveName() string
}

// Defaulter is implemented by fragments whose default value is not their
// zero value. Default is applied before the directive arguments are decoded.
type Defaulter interface {
	Default()
}

// ArgumentsRequirer is implemented by fragments with arguments that must be
// written out even though null is an accepted value for them.
type ArgumentsRequirer interface {
	RequiredArguments() []string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Default returns the value of T used when its directive is absent.
func Default[T Codec]() T {
	var out T
	if d, ok := any(&out).(Defaulter); ok {
		d.Default()
	}
	return out
}

// Decode decodes the arguments of dir into a T. Causes are located at the
// offending argument or directive and traced under "@name".
func Decode[T Codec](dir *language.Directive) valid.Valid[T] {
	return valid.AndThen(Arguments(dir), func(args map[string]any) valid.Valid[T] {
		out := Default[T]()
		if r, ok := any(out).(ArgumentsRequirer); ok {
			c := &valid.Collector{}
			for _, name := range r.RequiredArguments() {
				if _, ok := args[name]; !ok {
					valid.Collect(c, valid.FailAt[struct{}](fmt.Sprintf("argument %q is required", name), dir.Position))
				}
			}
			if c.Len() > 0 {
				return valid.Result(c, out)
			}
		}
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &out,
			TagName:     "json",
			ErrorUnused: true,
			DecodeHook:  rejectFloatToInt,
		})
		if err != nil {
			return valid.FailAt[T](err.Error(), dir.Position)
		}
		if err := dec.Decode(args); err != nil {
			c := &valid.Collector{}
			for _, msg := range decodeMessages(err) {
				valid.Collect(c, valid.FailAt[struct{}](msg, dir.Position))
			}
			return valid.Result(c, out)
		}
		if err := validate.Struct(out); err != nil {
			fes, ok := err.(validator.ValidationErrors)
			if !ok {
				return valid.FailAt[T](err.Error(), dir.Position)
			}
			c := &valid.Collector{}
			for _, fe := range fes {
				valid.Collect(c, valid.FailAt[struct{}](validationMessage(fe), dir.Position))
			}
			return valid.Result(c, out)
		}
		return valid.Succeed(out)
	}).Trace("@" + dir.Name)
}

// rejectFloatToInt refuses float literals for integer fields instead of
// truncating them.
func rejectFloatToInt(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
	default:
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return nil, fmt.Errorf("expected an integer, got %v", data)
	}
	return data, nil
}

// decodeMessages returns one message per problem reported by the decoder.
// Joined errors are flattened; wrappers that only add a summary line around
// a joined error are skipped.
func decodeMessages(err error) []string {
	var msgs []string
	for _, leaf := range leafErrors(err) {
		for _, line := range strings.Split(leaf.Error(), "\n") {
			line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
			if line == "" || isSummaryLine(line) {
				continue
			}
			msgs = append(msgs, line)
		}
	}
	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func leafErrors(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, inner := range joined.Unwrap() {
			out = append(out, leafErrors(inner)...)
		}
		return out
	}
	if inner := errors.Unwrap(err); inner != nil {
		if _, ok := inner.(interface{ Unwrap() []error }); ok {
			return leafErrors(inner)
		}
	}
	return []error{err}
}

func isSummaryLine(line string) bool {
	return strings.HasSuffix(line, "decoding:") || strings.HasSuffix(line, "error(s):")
}

// validationMessage renders a single failed constraint.
func validationMessage(fe validator.FieldError) string {
	name := fe.Namespace()
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("argument %q is required", name)
	case "oneof":
		return fmt.Sprintf("argument %q must be one of [%s], got %v", name, fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("argument %q must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("argument %q must be at most %s", name, fe.Param())
	case "url":
		return fmt.Sprintf("argument %q must be a valid URL, got %v", name, fe.Value())
	default:
		return fmt.Sprintf("argument %q failed on the %q constraint", name, fe.Tag())
	}
}
