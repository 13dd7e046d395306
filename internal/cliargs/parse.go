// Package cliargs scans raw command-line arguments for selected
// pentomino letters, per the "-l -y -v" / "-lyvtwz" contract: any
// argument beginning with a single dash contributes its remaining
// characters, each mapped case-insensitively to an upper-case piece
// letter. Unknown characters are silently ignored, duplicates collapse
// into a set, and double-dash long flags are left untouched for the
// caller to parse separately.
package cliargs

import (
	"strings"

	"dlx.dev/pentomino/internal/domain"
)

var validLetters = func() map[byte]domain.Letter {
	m := make(map[byte]domain.Letter, len(domain.AllLetters))
	for _, l := range domain.AllLetters {
		m[l.Byte()] = l
	}
	return m
}()

// Parse extracts the set of selected piece letters from args, in the
// alphabetical order the rest of the pipeline expects. Arguments that
// don't start with "-", and long ("--...") flags, are ignored here; the
// caller is expected to have routed those to its own flag parser.
func Parse(args []string) []domain.Letter {
	seen := map[domain.Letter]bool{}
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
			continue
		}
		for _, r := range arg[1:] {
			b := byte(strings.ToUpper(string(r))[0])
			if l, ok := validLetters[b]; ok {
				seen[l] = true
			}
		}
	}
	var out []domain.Letter
	for _, l := range domain.AllLetters {
		if seen[l] {
			out = append(out, l)
		}
	}
	return out
}
