package main

import (
	"fmt"
	"strconv"
	"strings"

	"goatrinik/inventory"
)

// fakeWorld stands in for the server when running with -fake. It owns the
// player's objects and applies the commands the client sends, so every
// inventory action can be tried without a connection.
type fakeWorld struct {
	player  *inventory.Player
	nextTag inventory.Tag
}

func newFakeWorld(p *inventory.Player) *fakeWorld {
	return &fakeWorld{player: p, nextTag: 1000}
}

func (w *fakeWorld) newObject(name, face string, nrof uint32, weight float64) *inventory.Object {
	w.nextTag++
	return &inventory.Object{
		Tag:       w.nextTag,
		Name:      name,
		Face:      face,
		Nrof:      nrof,
		Weight:    weight,
		Quality:   100,
		Condition: 100,
	}
}

// populate fills the world with a small demo inventory.
func (w *fakeWorld) populate() {
	p := w.player
	p.Level = 4
	p.WeightLimit = 120
	if p.Skills == nil {
		p.Skills = map[inventory.Tag]int{}
	}

	swordSkill := w.newObject("swordsmanship", "skill", 1, 0)
	swordSkill.Type = inventory.TypeSkill
	p.Ob.Add(swordSkill)
	p.Skills[swordSkill.Tag] = 6

	sword := w.newObject("long sword", "sword", 1, 4.5)
	sword.Flags = inventory.FlagApplied
	sword.Level, sword.SkillTag = 5, swordSkill.Tag
	sword.Condition = 87
	p.Ob.Add(sword)

	shield := w.newObject("round shield", "shield", 1, 6)
	shield.Level = 8
	p.Ob.Add(shield)

	p.Ob.Add(w.newObject("arrows", "arrow", 25, 0.05))

	potion := w.newObject("potion", "potion", 1, 0.2)
	potion.Flags = inventory.FlagMagical
	potion.Quality = inventory.QualityUnidentified
	p.Ob.Add(potion)

	ring := w.newObject("iron ring", "ring", 1, 0.01)
	ring.Flags = inventory.FlagCursed | inventory.FlagApplied
	p.Ob.Add(ring)

	amulet := w.newObject("amulet", "amulet", 1, 0.1)
	amulet.Flags = inventory.FlagLocked | inventory.FlagMagical
	p.Ob.Add(amulet)

	p.Ob.Add(w.newObject("bread", "food", 3, 0.3))

	sack := w.newObject("sack", "sack", 1, 0.5)
	sack.Type = inventory.TypeContainer
	p.Ob.Add(sack)
	sack.Add(w.newObject("gold coins", "coin", 120, 0.01))
	sack.Add(w.newObject("ruby", "gem", 2, 0.02))

	chest := w.newObject("chest", "chest", 1, 30)
	chest.Type = inventory.TypeContainer
	p.Below.Add(chest)
	scroll := w.newObject("scroll", "scroll", 1, 0.1)
	scroll.Flags = inventory.FlagTrapped
	chest.Add(scroll)

	p.Below.Add(w.newObject("pebbles", "stone", 12000, 0.001))
	p.Below.Add(w.newObject("torch", "torch", 1, 1))
	unpaid := w.newObject("lantern", "lantern", 1, 1.5)
	unpaid.Flags = inventory.FlagUnpaid
	p.Below.Add(unpaid)
	damned := w.newObject("skull helm", "helm", 1, 3)
	damned.Flags = inventory.FlagDamned
	p.Below.Add(damned)
}

func (w *fakeWorld) find(tag inventory.Tag) *inventory.Object {
	switch tag {
	case w.player.Ob.Tag:
		return w.player.Ob
	case w.player.Below.Tag:
		return w.player.Below
	}
	return w.player.Find(tag)
}

// carried reports whether ob is inside the player, directly or in a container.
func (w *fakeWorld) carried(ob *inventory.Object) bool {
	for env := ob.Env; env != nil; env = env.Env {
		if env == w.player.Ob {
			return true
		}
	}
	return false
}

func parseTags(args []string, n int) ([]uint64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("need %d arguments, got %d", n, len(args))
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseUint(args[i], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// handle applies one client command.
func (w *fakeWorld) handle(cmd string) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return
	}
	logDebug("fake: %s", cmd)
	args := fields[1:]

	switch fields[0] {
	case "/move", "/droptag", "/gettag":
		v, err := parseTags(args, 3)
		if err != nil {
			logWarn("%s: %v", fields[0], err)
			return
		}
		w.move(inventory.Tag(v[0]), inventory.Tag(v[1]), uint32(v[2]))
	case "/apply", "/examine", "/mark", "/lock":
		v, err := parseTags(args, 1)
		if err != nil {
			logWarn("%s: %v", fields[0], err)
			return
		}
		ob := w.player.Find(inventory.Tag(v[0]))
		if ob == nil {
			logWarn("%s: no object %d", fields[0], v[0])
			return
		}
		switch fields[0] {
		case "/apply":
			w.apply(ob)
		case "/examine":
			w.examine(ob)
		case "/mark":
			if w.player.MarkCount == ob.Tag {
				w.player.MarkCount = 0
			} else {
				w.player.MarkCount = ob.Tag
			}
		case "/lock":
			ob.Flags ^= inventory.FlagLocked
		}
	case "/drop":
		if len(args) == 1 && args[0] == "all" {
			w.dropAll()
			return
		}
		consoleMessage("Drop what?")
	case "/take":
		if len(args) == 1 && args[0] == "all" {
			w.takeAll()
			return
		}
		consoleMessage("Take what?")
	case "/console":
		consoleMessage("console: " + strings.Join(args, " "))
	case "/patch":
		consoleMessage("patch: " + strings.Join(args, " "))
	default:
		infoMessage(inventory.ColorRed, fmt.Sprintf("Unknown command %s.", fields[0]))
	}
}

// move moves nrof of tag into loc; nrof 0 or the full count moves the
// whole stack. Parts of a stack become a new object.
func (w *fakeWorld) move(loc, tag inventory.Tag, nrof uint32) {
	p := w.player
	ob := w.player.Find(tag)
	dest := w.find(loc)
	if ob == nil || dest == nil {
		logWarn("move: bad tags %d into %d", tag, loc)
		return
	}
	if ob == dest || ob.Env == dest {
		return
	}
	leaving := w.carried(ob) && dest != p.Ob && !w.carried(dest)
	if leaving && ob.HasAny(inventory.FlagLocked) {
		infoMessage(inventory.ColorDGold, "That item is locked.")
		return
	}
	if leaving && ob.HasAny(inventory.FlagApplied) {
		infoMessage(inventory.ColorDGold, "You must unapply it first.")
		return
	}

	if nrof == 0 || nrof > ob.Nrof {
		nrof = ob.Nrof
	}
	arriving := !w.carried(ob) && (dest == p.Ob || w.carried(dest))
	if arriving && p.WeightLimit > 0 && w.carriedWeight()+ob.Weight*float64(nrof) > p.WeightLimit {
		infoMessage(inventory.ColorDGold, "That item is too heavy for you to pick up.")
		return
	}

	if nrof < ob.Nrof {
		ob.Nrof -= nrof
		part := *ob
		part.Env, part.Inv = nil, nil
		w.nextTag++
		part.Tag = w.nextTag
		part.Nrof = nrof
		ob = &part
	}
	if p.Sack == ob && dest != p.Ob && dest != p.Below {
		p.Sack = nil
	}
	if leaving && p.MarkCount == ob.Tag {
		p.MarkCount = 0
	}
	if merged := stackWith(dest, ob); merged != nil {
		if ob.Env != nil {
			ob.Env.Remove(ob)
		}
		merged.Nrof += ob.Nrof
		return
	}
	dest.Add(ob)
}

// stackWith returns an object in dest that ob merges into.
func stackWith(dest, ob *inventory.Object) *inventory.Object {
	if ob.Type == inventory.TypeContainer {
		return nil
	}
	for _, o := range dest.Inv {
		if o != ob && o.Name == ob.Name && o.Face == ob.Face && o.Flags == ob.Flags &&
			o.Type == ob.Type && o.Quality == ob.Quality && o.Condition == ob.Condition {
			return o
		}
	}
	return nil
}

func (w *fakeWorld) carriedWeight() float64 {
	var total float64
	var walk func(*inventory.Object)
	walk = func(env *inventory.Object) {
		for _, o := range env.Inv {
			total += o.TotalWeight()
			walk(o)
		}
	}
	walk(w.player.Ob)
	return total
}

func (w *fakeWorld) apply(ob *inventory.Object) {
	p := w.player
	if ob.Type == inventory.TypeContainer {
		if p.Sack == ob {
			p.Sack = nil
			infoMessage(inventory.ColorDGold, "You close "+ob.Name+".")
		} else {
			p.Sack = ob
			infoMessage(inventory.ColorDGold, "You open "+ob.Name+".")
		}
		return
	}
	if !w.carried(ob) {
		infoMessage(inventory.ColorDGold, "You must pick it up first.")
		return
	}
	if ob.HasAny(inventory.FlagApplied) {
		if ob.HasAny(inventory.FlagCursed | inventory.FlagDamned) {
			infoMessage(inventory.ColorRed, "No matter how hard you try, you just can't remove it!")
			return
		}
		ob.Flags &^= inventory.FlagApplied
		infoMessage(inventory.ColorDGold, "You unapply "+ob.Name+".")
		return
	}
	ob.Flags |= inventory.FlagApplied
	infoMessage(inventory.ColorDGold, "You apply "+ob.Name+".")
}

func (w *fakeWorld) examine(ob *inventory.Object) {
	desc := ob.Name
	if ob.Nrof > 1 {
		desc = fmt.Sprintf("%d %s", ob.Nrof, ob.Name)
	}
	var notes []string
	if !ob.Identified() {
		notes = append(notes, "unidentified")
	}
	if ob.HasAny(inventory.FlagMagical) && ob.Identified() {
		notes = append(notes, "magical")
	}
	if ob.HasAny(inventory.FlagLocked) {
		notes = append(notes, "locked")
	}
	if len(notes) > 0 {
		desc += " (" + strings.Join(notes, ", ") + ")"
	}
	consoleMessage(fmt.Sprintf("That is %s. It weighs %.3f kg.", desc, ob.TotalWeight()))
}

func (w *fakeWorld) dropAll() {
	p := w.player
	for _, ob := range append([]*inventory.Object(nil), p.Ob.Inv...) {
		if ob.Type == inventory.TypeSkill || ob.Type == inventory.TypeContainer {
			continue
		}
		if ob.HasAny(inventory.FlagLocked | inventory.FlagApplied) {
			continue
		}
		w.move(p.Below.Tag, ob.Tag, 0)
	}
}

func (w *fakeWorld) takeAll() {
	p := w.player
	for _, ob := range append([]*inventory.Object(nil), p.Below.Inv...) {
		w.move(p.Ob.Tag, ob.Tag, 0)
	}
}
