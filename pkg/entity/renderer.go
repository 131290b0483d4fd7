package entity

// Renderer handles rendering scene entities
type Renderer interface {
	RenderBackground(background *Background)
	RenderShip(ship *Ship)
	Clear()
	Present()
}
