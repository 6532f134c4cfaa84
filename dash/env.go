package dash

import (
	"fmt"
	"os"
	"strings"
)

// expandEnv replaces ${VAR} and $VAR in str. ${VAR:-def} gives a default and
// ${VAR:?msg} requires the variable. With strict, every unset variable is an
// error.
func expandEnv(str string, strict bool) (string, error) {
	var missing []string
	res := os.Expand(str, func(name string) string {
		name, mod, hasMod := cutModifier(name)
		value, ok := os.LookupEnv(name)
		switch {
		case hasMod && strings.HasPrefix(mod, "-"):
			if !ok || value == "" {
				return mod[1:]
			}
		case hasMod && strings.HasPrefix(mod, "?"):
			if !ok || value == "" {
				missing = append(missing, name+": "+mod[1:])
			}
		case !ok && strict:
			missing = append(missing, name)
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}
	return res, nil
}

func cutModifier(name string) (string, string, bool) {
	ix := strings.Index(name, ":")
	if ix < 0 {
		return name, "", false
	}
	return name[:ix], name[ix+1:], true
}
