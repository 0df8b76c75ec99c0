// Package flagx lets several independent loaders share one command line.
// Each loader picks out the flags it owns and parses only those, so the
// cobra command tree and the config package never trip over each other.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the flags listed in allowed, together with their
// values. Both "-f value" and "-f=value" spellings are recognised. A token
// following an allowed flag is treated as its value unless it starts with
// "-". The result is never nil.
func FilterArgs(args []string, allowed []string) []string {
	owned, _ := SplitArgs(args, allowed)
	return owned
}

// SplitArgs partitions args into the allowed flags (with their values) and
// everything else, preserving the relative order inside each part.
func SplitArgs(args []string, allowed []string) (owned []string, rest []string) {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	owned = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := known[name]; ok {
				owned = append(owned, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := known[arg]; !ok {
			rest = append(rest, arg)
			continue
		}
		owned = append(owned, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			owned = append(owned, args[i+1])
			i++
		}
	}

	return owned, rest
}

// ConfigFile returns the JSON config path given with -c or -config, or ""
// when neither is present. The last occurrence wins.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}
