// Package input defines the discrete commands the simulation understands and
// a buffer frontends use to hand them over once per tick.
package input

import (
	"fmt"
	"slices"
	"sync"
)

// Command is a single discrete player intent.
type Command uint8

const (
	RotateCW Command = iota + 1
	MoveLeft
	MoveRight
	SoftDrop
	Quit
)

var commandNames = map[Command]string{
	RotateCW:  "rotate",
	MoveLeft:  "left",
	MoveRight: "right",
	SoftDrop:  "drop",
	Quit:      "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand is the inverse of Command.String.
func ParseCommand(s string) (Command, error) {
	for c, name := range commandNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("input: unknown command %q", s)
}

// ContainsQuit reports whether the batch carries a Quit command.
func ContainsQuit(batch []Command) bool {
	return slices.Contains(batch, Quit)
}

// Queue buffers commands between a frontend's event source and the tick
// that consumes them. Push may be called from any goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []Command
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends commands in arrival order.
func (q *Queue) Push(cmds ...Command) {
	q.mu.Lock()
	q.pending = append(q.pending, cmds...)
	q.mu.Unlock()
}

// Poll returns every command pushed since the previous Poll and resets the
// buffer.
func (q *Queue) Poll() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	batch := make([]Command, len(q.pending))
	copy(batch, q.pending)
	q.pending = q.pending[:0]
	return batch
}

// Len returns the number of buffered commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
