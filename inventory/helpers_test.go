package inventory

import (
	"fmt"
	"time"

	"goatrinik/widget"
)

type sent struct {
	op   string
	loc  Tag
	tag  Tag
	nrof uint32
}

type fakeConn struct {
	sent     []sent
	commands []string
}

func (c *fakeConn) Move(loc, tag Tag, nrof uint32) {
	c.sent = append(c.sent, sent{op: "move", loc: loc, tag: tag, nrof: nrof})
}
func (c *fakeConn) Apply(tag Tag)      { c.sent = append(c.sent, sent{op: "apply", tag: tag}) }
func (c *fakeConn) Examine(tag Tag)    { c.sent = append(c.sent, sent{op: "examine", tag: tag}) }
func (c *fakeConn) Mark(tag Tag)       { c.sent = append(c.sent, sent{op: "mark", tag: tag}) }
func (c *fakeConn) Lock(tag Tag)       { c.sent = append(c.sent, sent{op: "lock", tag: tag}) }
func (c *fakeConn) Command(cmd string) { c.commands = append(c.commands, cmd) }

func (c *fakeConn) last() sent {
	if len(c.sent) == 0 {
		return sent{}
	}
	return c.sent[len(c.sent)-1]
}

type fakeUI struct {
	infos   []string
	console string
	prompts []QuantityPrompt
	menu    *widget.Menu
	sounds  []string
}

func (u *fakeUI) Info(_ Color, msg string)        { u.infos = append(u.infos, msg) }
func (u *fakeUI) EditConsole(text string)         { u.console = text }
func (u *fakeUI) PromptQuantity(p QuantityPrompt) { u.prompts = append(u.prompts, p) }
func (u *fakeUI) ShowMenu(m *widget.Menu)         { u.menu = m }
func (u *fakeUI) PlaySound(name string, _ int)    { u.sounds = append(u.sounds, name) }

func (u *fakeUI) lastInfo() string {
	if len(u.infos) == 0 {
		return ""
	}
	return u.infos[len(u.infos)-1]
}

type fakeOpts struct {
	collect  int
	operator bool
}

func (o *fakeOpts) CollectMode() int                { return o.collect }
func (o *fakeOpts) Operator() bool                  { return o.operator }
func (o *fakeOpts) DoubleClickDelay() time.Duration { return 300 * time.Millisecond }

type fakeDrag struct {
	tag      uint32
	x, y     int
	mx, my   int
	callback func()
}

func (d *fakeDrag) Check() bool {
	if d.tag == 0 {
		return false
	}
	return d.mx-d.x >= 3 || d.x-d.mx >= 3 || d.my-d.y >= 3 || d.y-d.my >= 3
}
func (d *fakeDrag) Start(tag uint32, x, y int) {
	d.tag, d.x, d.y, d.mx, d.my = tag, x, y, x, y
	d.callback = nil
}
func (d *fakeDrag) SetCallback(fn func()) { d.callback = fn }
func (d *fakeDrag) Stop()                 { d.tag = 0 }
func (d *fakeDrag) Tag() uint32           { return d.tag }

type fixture struct {
	m     *Manager
	p     *Player
	conn  *fakeConn
	ui    *fakeUI
	opts  *fakeOpts
	drag  *fakeDrag
	clock time.Time
}

func item(tag Tag, name string) *Object {
	return &Object{Tag: tag, Name: name, Nrof: 1, Weight: 1, Quality: 100, Condition: 90}
}

// newFixture builds a player carrying items 10..10+carried-1 and standing on
// items 100..100+below-1. The main widget shows 4 columns by 2 rows; the
// below widget 4 columns by 1 row.
func newFixture(carried, below int) *fixture {
	p := &Player{
		Ob:          &Object{Tag: 1, Name: "hero"},
		Below:       &Object{Tag: 2, Name: "floor"},
		WeightLimit: 100,
		Level:       5,
		Skills:      map[Tag]int{},
	}
	for i := 0; i < carried; i++ {
		p.Ob.Add(item(Tag(10+i), fmt.Sprintf("item%d", i)))
	}
	for i := 0; i < below; i++ {
		p.Below.Add(item(Tag(100+i), fmt.Sprintf("floor%d", i)))
	}
	f := &fixture{
		p:     p,
		conn:  &fakeConn{},
		ui:    &fakeUI{},
		opts:  &fakeOpts{},
		drag:  &fakeDrag{},
		clock: time.Unix(5000, 0),
	}
	f.m = NewManager(p, f.conn, f.ui, f.opts, f.drag)
	f.m.Now = func() time.Time { return f.clock }

	// main: grid width = W - 2*3 - 9 = 128, height = H - 44 - 3 = 64
	f.m.Main.X, f.m.Main.Y = 0, 0
	f.m.Main.SetSize(128+6+9, 64+47)
	// below: grid width = W - 2*5 - 9 = 128, height = H - 19 - 5 = 32
	f.m.Below.X, f.m.Below.Y = 0, 300
	f.m.Below.SetSize(128+10+9, 32+24)
	return f
}

// cellCenter returns the screen position of display slot i in w, assuming
// no scrolling.
func cellCenter(w *Widget, i int) (int, int) {
	g := w.GridRect()
	cols := g.Dx() / IconSize
	return g.Min.X + (i%cols)*IconSize + IconSize/2, g.Min.Y + (i/cols)*IconSize + IconSize/2
}
