// Package actions is the per-frame action bus between input producers and the
// movement resolver.
package actions

import (
	"fmt"

	"github.com/yohamta/donburi"
)

type Kind int

const (
	Move Kind = iota
	Jump
	Aim
	Fire
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Jump:
		return "jump"
	case Aim:
		return "aim"
	case Fire:
		return "fire"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Action is one player intent aimed at a character. Which fields are
// meaningful depends on Kind: Direction for Move, X and Y for Aim.
type Action struct {
	Kind   Kind
	Target donburi.Entity

	// Move direction in [-1, 1]
	Direction float64

	// Unnormalized aim direction
	X, Y float64
}

func NewMove(target donburi.Entity, direction float64) Action {
	return Action{Kind: Move, Target: target, Direction: direction}
}

func NewJump(target donburi.Entity) Action {
	return Action{Kind: Jump, Target: target}
}

func NewAim(target donburi.Entity, x, y float64) Action {
	return Action{Kind: Aim, Target: target, X: x, Y: y}
}

func NewFire(target donburi.Entity) Action {
	return Action{Kind: Fire, Target: target}
}

// Queue is an ordered single-frame queue. Producers push during the frame and
// one consumer drains everything in emission order.
type Queue struct {
	items []Action
}

func (q *Queue) Push(a Action) {
	q.items = append(q.items, a)
}

// Drain hands every queued action to fn in push order and empties the queue.
// Actions pushed by fn are delivered in the same call.
func (q *Queue) Drain(fn func(Action)) {
	for i := 0; i < len(q.items); i++ {
		fn(q.items[i])
	}
	q.Reset()
}

// Reset drops everything queued, keeping the backing array.
func (q *Queue) Reset() {
	q.items = q.items[:0]
}

func (q *Queue) Len() int {
	return len(q.items)
}
