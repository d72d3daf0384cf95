// internal/component/game_state.go
package component

// RunState - компонент для хранения состояния забега
type RunState struct {
	Running  bool
	Paused   bool
	GameOver bool
	Score    int
	Lives    int
	Wave     int

	// Generation меняется при каждом старте и сбросе. Отложенные события
	// с устаревшим поколением игнорируются.
	Generation uint64
}
