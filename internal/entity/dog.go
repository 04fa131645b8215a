package entity

import "github.com/vovakirdan/tui-homestead/internal/core"

// Dog defaults.
const (
	DogWidth  = 24
	DogHeight = 16
	DogRadius = 40.0
	DogSpeed  = 80.0
	// DogBounceDistance is how close the dog's next centre may get to the
	// player's centre before it turns around.
	DogBounceDistance = 35.0

	dogAnimPeriod = 1.0
)

// DogLines is what the dog says when nobody configured anything else.
var DogLines = []string{
	"Woof! Woof!",
	"The dog seems friendly and energetic.",
	"It's enjoying its run around the area.",
}

// Dog patrols horizontally between MinX and MaxX and turns around when it
// would run into the player.
type Dog struct {
	*Object

	minX, maxX float64
	speed      float64
	direction  float64
	anim       float64
	sniffing   ID
}

// NewDog creates a dog patrolling [minX, maxX] at speed pixels per second.
// The bounds are swapped if given in the wrong order and the start position
// is clamped into them.
func NewDog(pos core.Point, minX, maxX, speed float64) *Dog {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	o := NewObject(pos, KindNPC, DogLines)
	o.SetSize(DogWidth, DogHeight)
	o.SetFootprint(DogWidth, DogHeight)
	o.SetInteractionRadius(DogRadius)
	d := &Dog{
		Object:    o,
		minX:      minX,
		maxX:      maxX,
		speed:     speed,
		direction: 1,
	}
	d.clampPatrol()
	return d
}

// NewDogPatrol centres a patrol of the given width on pos.X and keeps it
// inside [lo, hi].
func NewDogPatrol(pos core.Point, width, lo, hi float64) *Dog {
	minX := max(pos.X-width/2, lo)
	maxX := min(pos.X+width/2, hi)
	return NewDog(pos, minX, maxX, DogSpeed)
}

// Patrol returns the horizontal bounds of the patrol.
func (d *Dog) Patrol() (minX, maxX float64) { return d.minX, d.maxX }

// Speed returns the patrol speed in pixels per second.
func (d *Dog) Speed() float64 { return d.speed }

// SetSpeed changes the patrol speed. Negative values are treated as zero.
func (d *Dog) SetSpeed(v float64) { d.speed = max(v, 0) }

// FacingRight reports the direction of travel.
func (d *Dog) FacingRight() bool { return d.direction > 0 }

// AnimTimer returns the animation phase in seconds, in [0, 1].
func (d *Dog) AnimTimer() float64 { return d.anim }

// Sniffing returns the garden flower patch the dog was near during the last
// proximity pass.
func (d *Dog) Sniffing() (ID, bool) { return d.sniffing, d.sniffing != NilID }

// WantsPlayerPosition is always true: the dog avoids the player.
func (d *Dog) WantsPlayerPosition() bool { return true }

// Update moves the dog along its patrol.
func (d *Dog) Update(dt float64) {
	d.sniffing = NilID
	d.move(dt)
	d.tick(dt)
}

// UpdateWithPlayer reverses direction if the next step would bring the dog
// within DogBounceDistance of the player, then moves.
func (d *Dog) UpdateWithPlayer(dt float64, player core.Point) {
	d.sniffing = NilID
	next := d.Center()
	next.X += d.speed * d.direction * dt
	if next.Dist(player) < DogBounceDistance {
		d.direction = -d.direction
	}
	d.move(dt)
	d.tick(dt)
}

// OnProximity records garden flower patches the dog passes by.
func (d *Dog) OnProximity(other Interactable) {
	if other.Kind() == KindGardenFlower {
		d.sniffing = other.ID()
	}
}

// Render draws the dog; the glyph points the way it runs.
func (d *Dog) Render(c core.Canvas, camera core.Point) {
	glyph := 'd'
	if !d.FacingRight() {
		glyph = 'b'
	}
	c.DrawRect(d.Bounds(), camera, core.ColorBrown, glyph)
}

func (d *Dog) move(dt float64) {
	pos := d.Position()
	pos.X += d.speed * d.direction * dt
	d.SetPosition(pos)
	d.clampPatrol()
}

// clampPatrol keeps the dog in bounds and turns it at the edges.
func (d *Dog) clampPatrol() {
	pos := d.Position()
	switch {
	case pos.X <= d.minX:
		pos.X = d.minX
		d.direction = 1
	case pos.X >= d.maxX:
		pos.X = d.maxX
		d.direction = -1
	}
	d.SetPosition(pos)
}

func (d *Dog) tick(dt float64) {
	d.anim += dt
	if d.anim > dogAnimPeriod {
		d.anim = 0
	}
}
