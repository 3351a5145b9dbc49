package inventory

import "strings"

// Filter is a bitmask of item categories shown in the main inventory. The
// zero value shows everything.
type Filter uint64

const (
	FilterApplied Filter = 1 << iota
	FilterContainer
	FilterMagical
	FilterCursed
	FilterUnidentified
	FilterUnapplied
	FilterLocked

	filterMax = iota
)

const FilterAll Filter = 0

// FilterNames holds the name of each filter bit, lowest bit first.
var FilterNames = [filterMax]string{
	"applied", "container", "magical", "cursed", "unidentified", "unapplied",
	"locked",
}

// ParseFilter builds a filter from space separated names. Unknown names are
// ignored, so an empty or unrecognized string yields FilterAll.
func ParseFilter(s string) Filter {
	f := FilterAll
	for _, word := range strings.Fields(s) {
		for i, n := range FilterNames {
			if n == word {
				f |= 1 << i
				break
			}
		}
	}
	return f
}

// Names returns the names of the active filters.
func (f Filter) Names() []string {
	var out []string
	for i, n := range FilterNames {
		if f&(1<<i) != 0 {
			out = append(out, n)
		}
	}
	return out
}

func (f Filter) String() string { return strings.Join(f.Names(), " ") }

// Label is the short description shown in the inventory: "all", the first
// active filter, or the first followed by an ellipsis.
func (f Filter) Label() string {
	if f == FilterAll {
		return "all"
	}
	names := f.Names()
	if len(names) > 1 {
		return names[0] + ", ..."
	}
	return names[0]
}

// matches reports whether ob is shown under filter f for player p.
func matches(p *Player, ob *Object, f Filter) bool {
	// Nothing is filtered on the floor or inside the open container.
	if ob.Env != nil && (ob.Env == p.Below || ob.Env == p.Sack) {
		return true
	}
	if ob.Type.hidden() {
		return false
	}
	if f == FilterAll {
		return true
	}
	switch {
	case f&FilterApplied != 0 && ob.HasAny(FlagApplied):
	case f&FilterContainer != 0 && ob.Type == TypeContainer:
	case f&FilterMagical != 0 && ob.HasAny(FlagMagical):
	case f&FilterCursed != 0 && ob.HasAny(FlagCursed|FlagDamned):
	case f&FilterUnidentified != 0 && !ob.Identified():
	case f&FilterUnapplied != 0 && !ob.HasAny(FlagApplied):
	case f&FilterLocked != 0 && ob.HasAny(FlagLocked):
	default:
		return false
	}
	return true
}
