package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerBackground = 0
	LayerWorld      = 10
	LayerEffects    = 20
	LayerOverlay    = 100
)

var RenderLayerComponent = NewComponent[RenderLayer]()
