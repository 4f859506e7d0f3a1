// internal/event/types.go
package event

const (
	PointerMoved   EventType = "PointerMoved"   // Data: droppings.Point
	PointerExited  EventType = "PointerExited"  // курсор покинул поверхность
	OverlayToggled EventType = "OverlayToggled" // Data: bool, новое состояние
)
