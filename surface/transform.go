package surface

import (
	"strconv"
	"strings"
)

// TransformFunc is one function of a transform string, e.g. translate(4px, 2px).
type TransformFunc struct {
	Name string
	Args []string
}

// MergeTransform sets fn(arg) inside a space-separated transform string. An
// existing function with the same name is replaced in place; otherwise the
// function is appended. Other functions are left untouched.
func MergeTransform(transform, fn, arg string) string {
	call := fn + "(" + arg + ")"
	start, end, ok := findFunc(transform, fn)
	if !ok {
		transform = strings.TrimSpace(transform)
		if transform == "" {
			return call
		}
		return transform + " " + call
	}
	return transform[:start] + call + transform[end:]
}

// findFunc locates name(...) at a function boundary and returns the byte
// range covering the whole call.
func findFunc(transform, name string) (int, int, bool) {
	needle := name + "("
	from := 0
	for {
		i := strings.Index(transform[from:], needle)
		if i < 0 {
			return 0, 0, false
		}
		start := from + i
		if start == 0 || transform[start-1] == ' ' {
			closing := strings.IndexByte(transform[start:], ')')
			if closing < 0 {
				return 0, 0, false
			}
			return start, start + closing + 1, true
		}
		from = start + len(needle)
	}
}

// ParseTransform splits a transform string into its functions. Malformed
// trailing input is ignored.
func ParseTransform(transform string) []TransformFunc {
	var out []TransformFunc
	rest := strings.TrimSpace(transform)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		closing := strings.IndexByte(rest, ')')
		if open <= 0 || closing < open {
			break
		}
		name := strings.TrimSpace(rest[:open])
		var args []string
		for _, a := range strings.Split(rest[open+1:closing], ",") {
			if a = strings.TrimSpace(a); a != "" {
				args = append(args, a)
			}
		}
		out = append(out, TransformFunc{Name: name, Args: args})
		rest = strings.TrimSpace(rest[closing+1:])
	}
	return out
}

// Number parses a numeric transform argument, dropping any unit suffix.
func Number(arg string) (float64, bool) {
	end := len(arg)
	for end > 0 {
		c := arg[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}
	v, err := strconv.ParseFloat(arg[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
