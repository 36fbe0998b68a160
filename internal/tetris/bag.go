package tetris

import "math/rand"

// Bag is the 7-bag piece randomizer: every window of seven draws from one
// bag contains each shape exactly once. The bag holds a fixed 7-element
// buffer that is reshuffled in place whenever it runs out, so draws never
// allocate.
type Bag struct {
	rng       *rand.Rand
	queue     [ShapeCount]Shape
	remaining int
}

// NewBag creates a randomizer seeded for deterministic replay.
func NewBag(seed int64) *Bag {
	b := &Bag{rng: rand.New(rand.NewSource(seed))}
	b.refill()
	return b
}

// refill restocks the bag with one of each shape and applies a uniform
// Fisher-Yates shuffle.
func (b *Bag) refill() {
	for i := 0; i < ShapeCount; i++ {
		b.queue[i] = Shape(i + 1)
	}
	b.rng.Shuffle(ShapeCount, func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
	b.remaining = ShapeCount
}

// Next draws the next shape, reshuffling a fresh bag when empty.
func (b *Bag) Next() Shape {
	if b.remaining == 0 {
		b.refill()
	}
	b.remaining--
	return b.queue[b.remaining]
}

// Peek returns the shape the next call to Next will draw, without
// consuming it. Used for the next-piece preview.
func (b *Bag) Peek() Shape {
	if b.remaining == 0 {
		b.refill()
	}
	return b.queue[b.remaining-1]
}

// Remaining returns how many draws are left before the next reshuffle.
func (b *Bag) Remaining() int {
	return b.remaining
}
