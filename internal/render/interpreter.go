// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
)

// defaultInterpreters are tried in order when none is configured.
var defaultInterpreters = []string{"python3", "python"}

// DetectInterpreter returns the first Python interpreter that has nbconvert
// installed. When preferred is non-empty it is the only candidate.
func DetectInterpreter(preferred string) (string, error) {
	return detectInterpreter(preferred, defaultExec)
}

func detectInterpreter(preferred string, exec executor) (string, error) {
	candidates := defaultInterpreters
	if preferred != "" {
		candidates = []string{preferred}
	}

	for _, bin := range candidates {
		if hasNbconvert(bin, exec) {
			return bin, nil
		}
	}

	return "", fmt.Errorf(
		"no interpreter with nbconvert available: tried %s (install with `pip install nbconvert`)",
		strings.Join(candidates, ", "),
	)
}

func hasNbconvert(bin string, exec executor) bool {
	if _, err := exec.LookPath(bin); err != nil {
		return false
	}
	return exec.RunSilent(bin, "-m", "nbconvert", "--version") == nil
}
