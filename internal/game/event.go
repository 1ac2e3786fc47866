package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

type EventKind int

const (
	EventLanded EventKind = iota
	EventShot
	EventPlayerHit
	EventEnemyHit
	EventEnemyDown
	EventBulletsCollided
	EventBulletExpired
	EventArtifactActivated
)

var eventNames = [...]string{
	EventLanded:            "landed",
	EventShot:              "shot",
	EventPlayerHit:         "player_hit",
	EventEnemyHit:          "enemy_hit",
	EventEnemyDown:         "enemy_down",
	EventBulletsCollided:   "bullets_collided",
	EventBulletExpired:     "bullet_expired",
	EventArtifactActivated: "artifact_activated",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is something the presentation layer may react to.
type Event struct {
	Kind     EventKind
	Position rl.Vector3
	Owner    Owner     // for shots and hits
	ID       uuid.UUID // bullet or enemy involved, zero otherwise
}

// HasEvent reports whether events contains one of kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
