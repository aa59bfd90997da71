package component

// Sprite names the image drawn at the entity's Transform. Image keys are
// resolved by the renderer, e.g. "tiles/terrain_grass_block_top".
//
// Base is an optional image drawn underneath Image, used by the player whose
// body and animated overlay are separate pictures.
type Sprite struct {
	Image   string
	OffsetX float64
	OffsetY float64

	Base        string
	BaseOffsetX float64
	BaseOffsetY float64
}

var SpriteComponent = NewComponent[Sprite]()
