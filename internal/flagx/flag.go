// Package flagx helps several independent flag sets share one command line.
// Each consumer picks out only the flags it owns with Filter and parses them
// with its own flag.FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Filter returns the subset of args that belongs to the allowed flags, in
// their original order.
//
// Both "-f value" and "-f=value" forms are recognised. A token following a
// flag is taken as its value unless it starts with "-". Boolean flags should
// therefore be passed as "-f=true" when followed by a positional argument.
func Filter(args []string, allowed ...string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := known[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := known[arg]; !ok {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigPath extracts the JSON config file path given with -c or -config.
// It returns "" when neither flag is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(Filter(args, "-c", "-config", "--config"))

	return path
}
