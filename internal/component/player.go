// internal/component/player.go
package component

// Player помечает сущность, управляемую с клавиатуры.
type Player struct {
	Diameter float64 // Визуальный диаметр; половина используется для ограничения по стенам
}
