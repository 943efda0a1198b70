// Package flagx holds small helpers for sharing os.Args between several
// independent flag sets (the config file selector and the main flags).
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags named in allowed, together with their
// values, and drops everything else. The Go flag package accepts both "-x"
// and "--x", so both spellings of an allowed name are kept.
//
// Recognized forms:
//
//	-a value
//	-a=value
//	--a=value
//
// A token that follows an allowed flag is taken as its value unless it starts
// with "-".
func FilterArgs(args []string, allowed []string) []string {
	names := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		names[flagName(f)] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		if _, ok := names[flagName(name)]; !ok {
			continue
		}

		out = append(out, arg)
		if hasValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

func flagName(s string) string {
	return strings.TrimLeft(s, "-")
}

// ConfigFilePath returns the JSON config path given with -c or -config in
// args, or "" when neither is present. Other flags are ignored so the caller
// can parse them with its own flag set. When both are given, the last wins.
func ConfigFilePath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
