// Package entity implements the actors that move on a puzzle board: the
// player and the enemies. Actors only ever move one cell per step and ask
// the board whether a destination is legal.
package entity

import "github.com/vovakirdan/gridshift/internal/grid"

// Terrain is the part of the board actors need.
type Terrain interface {
	IsWalkable(c grid.Coord) bool
	Unflip(c grid.Coord) bool
}

// Player is the user-controlled actor.
type Player struct {
	Pos           grid.Coord
	cooldown      int64 // ticks between accepted moves
	cooldownUntil int64
}

// NewPlayer places a player at start. cooldownTicks is the time a move
// takes; no other move or flip is accepted until it has passed.
func NewPlayer(start grid.Coord, cooldownTicks int) *Player {
	return &Player{Pos: start, cooldown: int64(cooldownTicks)}
}

// Moving reports whether the player is still completing a move at tick now.
func (p *Player) Moving(now int64) bool {
	return now < p.cooldownUntil
}

// TryMove steps the player one cell in direction d. It fails without side
// effects while the player is moving or when the destination is not walkable.
func (p *Player) TryMove(d grid.Dir, t Terrain, now int64) bool {
	if p.Moving(now) {
		return false
	}
	next := p.Pos.Add(d)
	if !t.IsWalkable(next) {
		return false
	}
	p.Pos = next
	p.cooldownUntil = now + p.cooldown
	return true
}

// Caught reports whether any enemy stands on pos.
func Caught(enemies []*Enemy, pos grid.Coord) bool {
	for _, e := range enemies {
		if e.Pos == pos {
			return true
		}
	}
	return false
}
