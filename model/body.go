package model

// body is a growable ring buffer of cells, front first. Move and Grow only
// touch its ends, so both stay O(1) without reallocating on every tick.
type body struct {
	cells []Block
	start int
	n     int
}

func newBody(capacity int) *body {
	if capacity < 4 {
		capacity = 4
	}
	return &body{cells: make([]Block, capacity)}
}

func (b *body) len() int { return b.n }

// at returns the i-th cell counted from the front.
func (b *body) at(i int) Block {
	return b.cells[(b.start+i)%len(b.cells)]
}

func (b *body) front() (Block, bool) {
	if b.n == 0 {
		return Block{}, false
	}
	return b.cells[b.start], true
}

func (b *body) back() (Block, bool) {
	if b.n == 0 {
		return Block{}, false
	}
	return b.at(b.n - 1), true
}

func (b *body) pushFront(c Block) {
	b.reserve()
	b.start = (b.start - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.start] = c
	b.n++
}

func (b *body) pushBack(c Block) {
	b.reserve()
	b.cells[(b.start+b.n)%len(b.cells)] = c
	b.n++
}

func (b *body) popBack() (Block, bool) {
	c, ok := b.back()
	if ok {
		b.n--
	}
	return c, ok
}

// reserve doubles the buffer when it is full, unrolling it so the front
// lands at index 0.
func (b *body) reserve() {
	if b.n < len(b.cells) {
		return
	}
	cells := make([]Block, len(b.cells)*2)
	for i := 0; i < b.n; i++ {
		cells[i] = b.at(i)
	}
	b.cells = cells
	b.start = 0
}
