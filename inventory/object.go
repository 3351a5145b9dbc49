// Package inventory implements the inventory widget: the player's carried
// items and the items on the ground below, with filtering, selection,
// drag and drop, context menus and the commands they send to the server.
package inventory

import "fmt"

// Tag identifies an object on the server. Zero means no object.
type Tag uint32

// Type is the item type reported by the server.
type Type int

const (
	TypeMisc Type = iota
	TypeContainer
	TypeSpell
	TypeSkill
	TypeForce
	TypePoisoning
	TypeRegionMap
)

// hidden reports whether objects of type t never show in an inventory.
func (t Type) hidden() bool {
	switch t {
	case TypeSpell, TypeSkill, TypeForce, TypePoisoning, TypeRegionMap:
		return true
	}
	return false
}

// Flag is a bitmask of item state flags.
type Flag uint32

const (
	FlagApplied Flag = 1 << iota
	FlagUnpaid
	FlagMagical
	FlagCursed
	FlagDamned
	FlagLocked
	FlagTrapped
)

// QualityUnidentified is the item quality the server sends for unidentified items.
const QualityUnidentified = 255

// Object is an item, container or creature known to the client. Inv holds
// the objects inside it in display order.
type Object struct {
	Tag       Tag
	Name      string
	Face      string
	Type      Type
	Flags     Flag
	Nrof      uint32
	Weight    float64
	Quality   int
	Condition int
	Level     int
	SkillTag  Tag

	Env *Object
	Inv []*Object
}

func (o *Object) String() string {
	if o == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s #%d", o.Name, o.Tag)
}

// Has reports whether all flags in f are set.
func (o *Object) Has(f Flag) bool { return o.Flags&f == f }

// HasAny reports whether any flag in f is set.
func (o *Object) HasAny(f Flag) bool { return o.Flags&f != 0 }

// Identified reports whether the item's quality is known.
func (o *Object) Identified() bool { return o.Quality != QualityUnidentified }

// TotalWeight is the weight of the whole stack.
func (o *Object) TotalWeight() float64 { return o.Weight * float64(o.Nrof) }

// Add appends child to o's inventory, removing it from any previous
// environment.
func (o *Object) Add(child *Object) {
	if child.Env != nil {
		child.Env.Remove(child)
	}
	child.Env = o
	o.Inv = append(o.Inv, child)
}

// Remove takes child out of o's inventory.
func (o *Object) Remove(child *Object) {
	for i, c := range o.Inv {
		if c == child {
			o.Inv = append(o.Inv[:i], o.Inv[i+1:]...)
			child.Env = nil
			return
		}
	}
}

// last reports whether o is the final object in its environment.
func (o *Object) last() bool {
	if o.Env == nil {
		return true
	}
	inv := o.Env.Inv
	return len(inv) > 0 && inv[len(inv)-1] == o
}

// find searches o and everything inside it for tag.
func (o *Object) find(tag Tag) *Object {
	if o == nil {
		return nil
	}
	if o.Tag == tag {
		return o
	}
	for _, c := range o.Inv {
		if f := c.find(tag); f != nil {
			return f
		}
	}
	return nil
}

// Player is the client's view of the current player: the player object,
// the pseudo object holding what lies on the floor, the open container and
// transient UI state.
type Player struct {
	Ob    *Object
	Below *Object
	Sack  *Object

	// MarkCount is the tag of the marked item.
	MarkCount Tag

	RealWeight  float64
	WeightLimit float64
	Level       int
	// Skills maps skill object tags to the player's level in that skill.
	Skills map[Tag]int

	// Focus is the inventory widget that has keyboard focus.
	Focus *Widget
}

// Find looks up an object by tag in the player's inventory and below.
func (p *Player) Find(tag Tag) *Object {
	if tag == 0 {
		return nil
	}
	if ob := p.Ob.find(tag); ob != nil {
		return ob
	}
	return p.Below.find(tag)
}

// requiredLevel returns the level to compare against an item's level
// requirement and the requirement text.
func (p *Player) requiredLevel(ob *Object) (int, string) {
	if ob.SkillTag != 0 {
		if skill := p.Find(ob.SkillTag); skill != nil {
			if lvl, ok := p.Skills[skill.Tag]; ok {
				return lvl, fmt.Sprintf("level %d %s", ob.Level, skill.Name)
			}
		}
	}
	return p.Level, fmt.Sprintf("level %d", ob.Level)
}
