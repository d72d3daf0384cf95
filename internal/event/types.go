// internal/event/types.go
package event

import "go-galaxy-raid/internal/component"

const (
	RunStarted      EventType = "RunStarted"
	RunReset        EventType = "RunReset"
	PauseToggled    EventType = "PauseToggled"
	EnemyHit        EventType = "EnemyHit"        // пуля игрока попала во врага
	EnemyDestroyed  EventType = "EnemyDestroyed"  // враг убран из строя
	PlayerHit       EventType = "PlayerHit"       // игрок потерял жизнь
	PlayerRespawned EventType = "PlayerRespawned" // игрок снова в игре
	WaveCleared     EventType = "WaveCleared"     // строй уничтожен, началась новая волна
	GameOver        EventType = "GameOver"
)

// EnemyData - данные для EnemyHit и EnemyDestroyed
type EnemyData struct {
	ID   component.EntityID
	Type component.EnemyType
	HP   int
}

// PlayerHitData - данные для PlayerHit
type PlayerHitData struct {
	LivesLeft  int
	Generation uint64
}

// WaveData - данные для WaveCleared
type WaveData struct {
	Wave       int
	Cols, Rows int
}

// ScoreData - данные для GameOver
type ScoreData struct {
	Score int
	Wave  int
}
