package nextcloud

import (
	"fmt"
	"path"
	"strings"
)

// Variant is the resolution tier of one file: the high-resolution master
// ("full") or the optimized display copy ("web").
type Variant int

const (
	VariantFull Variant = iota
	VariantWeb
)

func (v Variant) String() string {
	if v == VariantWeb {
		return "web"
	}
	return "full"
}

// VariantGroup pairs the full and web copies of one logical photo under
// a canonical basename. At least one of Full/Web is always set.
type VariantGroup struct {
	Key  string
	Full *RemoteFile
	Web  *RemoteFile
}

// CanonicalBasename derives the pairing key for a filename: extension
// stripped, case-folded, "_web"/"_full" tokens removed, whitespace
// trimmed. "Event_Full (2).JPG" and "Event_Web (2).jpg" both reduce to
// "event (2)".
func CanonicalBasename(filename string) string {
	name := strings.TrimSuffix(filename, path.Ext(filename))
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_web", "")
	name = strings.ReplaceAll(name, "_full", "")
	return strings.TrimSpace(name)
}

// ClassifyVariant decides the role of one file. A _web/_full token in
// the filename wins over the parent folder name; unclassified files are
// treated as masters.
func ClassifyVariant(f RemoteFile) Variant {
	stem := strings.ToLower(strings.TrimSuffix(f.Filename, path.Ext(f.Filename)))
	if strings.Contains(stem, "_web") {
		return VariantWeb
	}
	if strings.Contains(stem, "_full") {
		return VariantFull
	}

	switch strings.ToLower(f.ParentFolder) {
	case "web":
		return VariantWeb
	case "full":
		return VariantFull
	}
	return VariantFull
}

// GroupVariants pairs listed files into variant groups, preserving the
// order in which basenames were first seen. When two files claim the
// same (basename, role) slot the later one wins; each overwrite is
// reported as a warning so the admin can review the collision.
func GroupVariants(files []RemoteFile) ([]VariantGroup, []string) {
	index := make(map[string]int, len(files))
	groups := make([]VariantGroup, 0, len(files))
	var warnings []string

	for _, f := range files {
		key := CanonicalBasename(f.Filename)
		i, ok := index[key]
		if !ok {
			groups = append(groups, VariantGroup{Key: key})
			i = len(groups) - 1
			index[key] = i
		}

		g := &groups[i]
		entry := f
		switch ClassifyVariant(f) {
		case VariantWeb:
			if g.Web != nil {
				warnings = append(warnings, collisionWarning(key, VariantWeb, g.Web.Path, f.Path))
			}
			g.Web = &entry
		default:
			if g.Full != nil {
				warnings = append(warnings, collisionWarning(key, VariantFull, g.Full.Path, f.Path))
			}
			g.Full = &entry
		}
	}
	return groups, warnings
}

func collisionWarning(key string, v Variant, previous, current string) string {
	return fmt.Sprintf("duplicate %s variant for %q: %s replaced %s", v, key, current, previous)
}
