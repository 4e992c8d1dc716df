// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import "strings"

// Slugify derives a URL/path-safe directory name from a project name:
// lowercase, runs of non-alphanumeric characters collapsed to a single
// hyphen, leading and trailing hyphens stripped.
//
// Slugify is total and idempotent: Slugify(Slugify(s)) == Slugify(s) for
// every input.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
