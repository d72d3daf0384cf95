// internal/component/enemy.go
package component

import "go-galaxy-raid/pkg/geom"

// EntityID - идентификатор врага в пределах одного забега
type EntityID uint64

// EnemyType - тип врага
type EnemyType int

const (
	Grunt EnemyType = iota
	Boss
)

func (t EnemyType) String() string {
	switch t {
	case Boss:
		return "boss"
	default:
		return "grunt"
	}
}

// EnemyPhase - состояние автомата врага
type EnemyPhase int

const (
	Entering EnemyPhase = iota
	InFormation
	Diving
)

func (p EnemyPhase) String() string {
	switch p {
	case Entering:
		return "entering"
	case InFormation:
		return "formation"
	case Diving:
		return "diving"
	default:
		return "unknown"
	}
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID EntityID
	Position
	Size
	HP    int
	Type  EnemyType
	Phase EnemyPhase

	Target Position // слот в строю
	Spawn  Position // точка появления за краем экрана
	Row    int
	Col    int

	EntryT      float64 // прогресс входа по кривой, [0, 1]
	DiveTimer   float64 // до следующего пике (в строю)
	DivePhase   float64
	DiveOriginX float64
}

// Bounds возвращает хитбокс врага.
func (e *Enemy) Bounds() geom.Rect {
	return Bounds(e.Position, e.Size)
}

// Alive - враг ещё не сбит.
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// SnapToSlot ставит врага ровно в его слот строя.
func (e *Enemy) SnapToSlot() {
	e.Position = e.Target
	e.Phase = InFormation
}
