package brawl

import (
	notify "github.com/bitly/go-notify"

	"github.com/rodoshi16/UTMIST-AI2/common/utils"
	"github.com/rodoshi16/UTMIST-AI2/common/utils/vector"
	"github.com/rodoshi16/UTMIST-AI2/game/rewards"
)

// WinSignal is posted through go-notify when a bout ends; signal-keyed
// reward terms subscribe to it via a rewards.SignalBridge.
const WinSignal = "win_signal"

const (
	// arena geometry
	FloorHeight   = 0.0
	DangerCeiling = 12.0

	attackRange = 1.0
	moveSpeed   = 4.0

	playerHitDamage   = 5.0
	opponentHitDamage = 2.0
	hitEveryTicks     = 10

	tauntEveryTicks = 90
	tauntForTicks   = 10

	damageCap = 100.0
)

type fighter struct {
	pos     vector.Vector2
	prevPos vector.Vector2
	state   rewards.ObjectState

	damage float64 // cumulative damage received

	// per-tick deltas, reset on every step
	damageDealt float64
	damageTaken float64

	keysHeld int
}

func (f *fighter) object() rewards.Object {
	return rewards.Object{
		Position:     f.pos,
		PrevPosition: f.prevPos,
		State:        f.state,
		DamageDealt:  f.damageDealt,
		DamageTaken:  f.damageTaken,
		KeysHeld:     f.keysHeld,
	}
}

// Bout is a deterministic scripted stand-in for the real platform-fighter
// simulation: enough kinematics and damage exchange to drive every reward
// term, with the same tick contract the real environment honors. The player
// closes on the opponent, trades hits in range, and taunts when idle; the
// first fighter past the damage cap loses.
type Bout struct {
	ticknum int
	dt      float64

	player   *fighter
	opponent *fighter

	over   bool
	winner string
}

func NewBout(dt float64) *Bout {
	utils.Assert(dt > 0, "bout tick duration must be strictly positive")

	return &Bout{
		dt: dt,
		player: &fighter{
			pos:     vector.MakeVector2(-6, 3),
			prevPos: vector.MakeVector2(-6, 3),
			state:   rewards.StateIdle,
		},
		opponent: &fighter{
			pos:     vector.MakeVector2(8, 0),
			prevPos: vector.MakeVector2(8, 0),
			state:   rewards.StateIdle,
		},
	}
}

func (b *Bout) Over() bool {
	return b.over
}

func (b *Bout) Winner() string {
	return b.winner
}

func (b *Bout) Ticknum() int {
	return b.ticknum
}

// Step advances the scripted simulation by one tick and returns the snapshot
// for reward evaluation. Previous positions still refer to the end of the
// last committed tick; callers must compute rewards before CommitTick.
func (b *Bout) Step() rewards.Snapshot {
	b.player.damageDealt = 0
	b.player.damageTaken = 0
	b.opponent.damageDealt = 0
	b.opponent.damageTaken = 0

	if !b.over {
		b.stepPlayer()
		b.stepOpponent()
		b.resolveHits()
		b.checkEnd()
	}

	return rewards.MakeSnapshot(map[string]rewards.Object{
		"player":   b.player.object(),
		"opponent": b.opponent.object(),
	}, b.dt)
}

// CommitTick advances the previous-position bookkeeping. Strictly ordered
// after reward computation for the tick: committing first would erase the
// tick's movement from every potential-difference term.
func (b *Bout) CommitTick() {
	b.player.prevPos = b.player.pos
	b.opponent.prevPos = b.opponent.pos
	b.ticknum++
}

func (b *Bout) inRange() bool {
	return rewards.Distance(b.player.pos, b.opponent.pos) <= attackRange
}

func (b *Bout) stepPlayer() {
	p := b.player

	if b.inRange() {
		p.state = rewards.StateAttacking
		p.keysHeld = 4
		return
	}

	tauntPhase := b.ticknum % tauntEveryTicks
	if tauntPhase >= tauntEveryTicks-tauntForTicks {
		p.state = rewards.StateTaunting
		p.keysHeld = 1
		return
	}

	p.state = rewards.StateWalking
	p.keysHeld = 2

	step := b.opponent.pos.Sub(p.pos).Limit(moveSpeed * b.dt)
	p.pos = p.pos.Add(step)

	// stay above the floor
	if p.pos.GetY() < FloorHeight {
		p.pos = vector.MakeVector2(p.pos.GetX(), FloorHeight)
	}
}

func (b *Bout) stepOpponent() {
	o := b.opponent

	if b.inRange() {
		o.state = rewards.StateAttacking
		o.keysHeld = 3
	} else {
		o.state = rewards.StateIdle
		o.keysHeld = 0
	}
}

func (b *Bout) resolveHits() {
	if !b.inRange() || b.ticknum%hitEveryTicks != 0 {
		return
	}

	if b.player.state == rewards.StateAttacking {
		b.player.damageDealt += playerHitDamage
		b.opponent.damageTaken += playerHitDamage
		b.opponent.damage += playerHitDamage
	}
	if b.opponent.state == rewards.StateAttacking {
		b.opponent.damageDealt += opponentHitDamage
		b.player.damageTaken += opponentHitDamage
		b.player.damage += opponentHitDamage
	}
}

func (b *Bout) checkEnd() {
	if b.opponent.damage >= damageCap {
		b.finish("player")
	} else if b.player.damage >= damageCap {
		b.finish("opponent")
	}
}

func (b *Bout) finish(winner string) {
	b.over = true
	b.winner = winner

	loser := b.opponent
	if winner == "opponent" {
		loser = b.player
	}
	loser.state = rewards.StateKO

	// the reward signal only fires for the learning agent's own win
	if winner == "player" {
		notify.Post(WinSignal, winner)
	}
}
