// Package form holds named, typed, documented parameters that are declared
// with defaults and then overridden from a "key=value:key=value" string.
package form

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

var (
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrMalformedToken   = errors.New("malformed parameter, expected key=value")
	ErrBadValue         = errors.New("invalid parameter value")
)

// Value is a parameter value. Its dynamic type is fixed by the declared
// default: float64, int, bool or string.
type Value struct {
	v interface{}
}

func (v Value) Float64() float64 { return cast.ToFloat64(v.v) }
func (v Value) Int() int         { return cast.ToInt(v.v) }
func (v Value) Bool() bool       { return cast.ToBool(v.v) }
func (v Value) String() string   { return cast.ToString(v.v) }

// Interface returns the underlying typed value.
func (v Value) Interface() interface{} { return v.v }

type item struct {
	value, deflt Value
	about        string
}

type Form struct {
	items map[string]*item
	order []string
}

func New() *Form {
	return &Form{items: make(map[string]*item)}
}

// Item declares a parameter. Declaring a name twice or using a default of an
// unsupported type is a programming error.
func (f *Form) Item(name string, deflt interface{}, about string) *Form {
	if _, exists := f.items[name]; exists {
		panic(fmt.Errorf("parameter %s declared twice", name))
	}
	switch d := deflt.(type) {
	case float64, int, bool, string:
	case float32:
		deflt = float64(d)
	default:
		panic(fmt.Errorf("parameter %s has unsupported default type %T", name, deflt))
	}
	f.items[name] = &item{value: Value{deflt}, deflt: Value{deflt}, about: about}
	f.order = append(f.order, name)
	return f
}

// MergeString splits a colon separated parameter string, dropping empty
// tokens, and merges the result.
func (f *Form) MergeString(parameters string) (*Form, error) {
	var args []string
	for _, token := range strings.Split(parameters, ":") {
		if len(token) != 0 {
			args = append(args, token)
		}
	}
	return f.MergeStringArgsAllowingDuplicates(args)
}

// MergeStringArgsAllowingDuplicates applies "key=value" tokens in order, so a
// later assignment to the same key wins. The first bad token aborts the merge
// and is named in the error.
func (f *Form) MergeStringArgsAllowingDuplicates(args []string) (*Form, error) {
	for _, token := range args {
		key, text, found := strings.Cut(token, "=")
		key = strings.TrimSpace(key)
		if !found || len(key) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedToken, token)
		}
		it, ok := f.items[key]
		if !ok {
			return nil, fmt.Errorf("%w %q in %q, expected one of %v", ErrUnknownParameter, key, token, f.SortedKeys())
		}
		v, err := convert(it.deflt.v, strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", ErrBadValue, token, err)
		}
		it.value = Value{v}
	}
	return f, nil
}

func convert(like interface{}, text string) (v interface{}, err error) {
	switch like.(type) {
	case float64:
		v, err = cast.ToFloat64E(text)
	case int:
		v, err = cast.ToIntE(text)
	case bool:
		v, err = cast.ToBoolE(text)
	default:
		v = text
	}
	return
}

// Get returns the current value. Asking for an undeclared name panics.
func (f *Form) Get(name string) Value {
	return f.lookup(name).value
}

func (f *Form) Default(name string) Value {
	return f.lookup(name).deflt
}

func (f *Form) About(name string) string {
	return f.lookup(name).about
}

func (f *Form) Has(name string) bool {
	_, ok := f.items[name]
	return ok
}

func (f *Form) lookup(name string) *item {
	it, ok := f.items[name]
	if !ok {
		panic(fmt.Errorf("parameter %s was never declared", name))
	}
	return it
}

func (f *Form) Len() int { return len(f.order) }

// Keys lists parameters in declaration order.
func (f *Form) Keys() []string {
	return append([]string(nil), f.order...)
}

// SortedKeys lists parameters lexicographically, for display.
func (f *Form) SortedKeys() (keys []string) {
	keys = f.Keys()
	sort.Strings(keys)
	return
}

// Print writes one dotted-leader line per parameter.
func (f *Form) Print(w io.Writer) {
	for _, key := range f.SortedKeys() {
		fmt.Fprintf(w, "%s %-10s %s\n", leader(key, 20), f.Get(key).String(), f.About(key))
	}
}

func leader(key string, width int) string {
	if len(key) >= width {
		return key
	}
	return key + strings.Repeat(".", width-len(key))
}
