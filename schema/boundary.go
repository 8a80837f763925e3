package schema

const (
	BoundaryCollection = "boundary"
)

type Geometry struct {
	Type        string      `bson:"type" json:"type"`
	Coordinates interface{} `bson:"coordinates" json:"coordinates"`
}

// Boundary is the polygon of an area, kept in mongodb for 2dsphere lookups.
type Boundary struct {
	AreaID   string   `bson:"area_id"`
	Name     string   `bson:"name"`
	District string   `bson:"district"`
	Province string   `bson:"province"`
	Geometry Geometry `bson:"geometry"`
}
