// Package treepath parses the comma separated ancestor path encoding used by
// the content store, eg "-1,1059,1075,1090" where -1 is the tree root
// sentinel and the last id is the node's own
// Parse once, then answer positional questions by index arithmetic
package treepath

import (
	"strconv"
	"strings"

	perr "sitegate/internal/platform/errors"
)

// Sentinel marks the implicit tree root in a serialized path
const Sentinel = -1

// Path is an ordered id sequence from outermost ancestor down to self
// the root sentinel is dropped during Parse
type Path struct {
	ids []int
}

// Parse splits a serialized ancestor path into a Path
// the leading -1 sentinel is discarded; malformed tokens fail the whole parse
func Parse(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Path{}, perr.ConfigInvalidf("ancestor path %q: empty token at %d", s, i)
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return Path{}, perr.ConfigInvalidf("ancestor path %q: bad token %q", s, p)
		}
		if i == 0 && id == Sentinel {
			continue
		}
		ids = append(ids, id)
	}
	return Path{ids: ids}, nil
}

// Len returns the number of ids excluding the sentinel
func (p Path) Len() int { return len(p.ids) }

// Empty reports whether the path holds no ids at all
// a path of only the sentinel is empty
func (p Path) Empty() bool { return len(p.ids) == 0 }

// IDs returns a copy of the id sequence, outermost first
func (p Path) IDs() []int {
	out := make([]int, len(p.ids))
	copy(out, p.ids)
	return out
}

// At returns the id at index i, outermost first
func (p Path) At(i int) int { return p.ids[i] }

// Root returns the outermost root-level ancestor id
// that is the first token after the sentinel
func (p Path) Root() (int, bool) {
	if len(p.ids) == 0 {
		return 0, false
	}
	return p.ids[0], true
}

// Self returns the node's own id, the last token
func (p Path) Self() (int, bool) {
	if len(p.ids) == 0 {
		return 0, false
	}
	return p.ids[len(p.ids)-1], true
}

// Parent returns the immediate parent id, the second-to-last token
// a single-id path has no parent
func (p Path) Parent() (int, bool) {
	if len(p.ids) < 2 {
		return 0, false
	}
	return p.ids[len(p.ids)-2], true
}

// Ancestors returns the ids excluding self, outermost first
func (p Path) Ancestors() []int {
	if len(p.ids) < 2 {
		return nil
	}
	out := make([]int, len(p.ids)-1)
	copy(out, p.ids[:len(p.ids)-1])
	return out
}

// String re-serializes the path including the sentinel, mainly for logs
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(Sentinel))
	for _, id := range p.ids {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}
