// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import "fmt"

const (
	// SemVer is the semantic version of Lingo.
	SemVer = "1.0.0-unreleased"
)

var (
	// Ver is the full version of Lingo, used in logs and responses.
	Ver = fmt.Sprintf("lingo-%s", SemVer)
	// Commit is the full git hash, if available
	Commit string
)

// initialize version strings (these are set in package main via linker flags)
func SetVersionString(version, commit string) {
	Commit = commit
	if version != "" {
		Ver = fmt.Sprintf("lingo-%s", version)
	} else if len(Commit) == 40 {
		Ver = fmt.Sprintf("lingo-%s-%s", SemVer, Commit[:16])
	}
}
