package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Tag is the collision category of a collider.
type Tag string

const (
	TagNone     Tag = ""
	TagPlatform Tag = "platform"
	TagObstacle Tag = "obstacle"
	TagCoin     Tag = "coin"
	TagNext     Tag = "next"
	TagTheEnd   Tag = "theend"
)
