package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

const (
	todoEnd    = -1
	todoUnseen = -2
)

// celltodo is a FIFO of cell indices threaded through next. An index can be
// added at most once over the lifetime of the list.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(n int) *celltodo {
	next := make([]int, n)
	for i := range next {
		next[i] = todoUnseen
	}
	return &celltodo{next: next, head: todoEnd, tail: todoEnd}
}

func (std *celltodo) add(i int) bool {
	if std.next[i] != todoUnseen {
		return false
	}
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = todoEnd
	return true
}

func (std *celltodo) pop() (int, bool) {
	if std.head < 0 {
		return 0, false
	}
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = todoEnd
	}
	return i, true
}

// NewRand returns a PCG generator with a random seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
