package util

import (
	"regexp"
	"strings"
)

// repoNamePattern matches structured repository identifiers like
// l3-angular-delta or l3-net-ipex-business: an l<digits> prefix followed by
// a technology segment and the project name (with optional suffixes).
var repoNamePattern = regexp.MustCompile(`(?i)l\d+-(\w+)-([^_\s]+)`)

// CleanRepoName derives a short technology-project label from a raw
// repository identifier. For underscore-delimited compound identifiers
// (e.g. SELISEdigitalplatforms_l3-angular-delta_1024) it retries once
// against the first segment starting with "l". When nothing matches the
// input is returned unchanged. The result is not guaranteed unique across
// distinct inputs.
func CleanRepoName(name string) string {
	return cleanRepoName(name, 1)
}

func cleanRepoName(name string, retries int) string {
	if m := repoNamePattern.FindStringSubmatch(name); m != nil {
		return m[1] + "-" + m[2]
	}

	if retries > 0 && strings.Contains(name, "_") {
		for _, part := range strings.Split(name, "_") {
			if strings.HasPrefix(strings.ToLower(part), "l") {
				return cleanRepoName(part, retries-1)
			}
		}
	}

	return name
}
