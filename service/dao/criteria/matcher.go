package criteria

import (
	"github.com/viant/pixelterm/service/dao"
)

// Match returns true when no parameter is named name, or when a parameter
// named name holds value (string) or contains it ([]string).
func Match(name, value string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != name {
			continue
		}
		switch actual := parameter.Value.(type) {
		case string:
			if actual != value {
				return false
			}
		case []string:
			found := false
			for _, candidate := range actual {
				if candidate == value {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}
