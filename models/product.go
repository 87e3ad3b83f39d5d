package models

// Product is a catalog entry ("burger"). The collection is read-only from
// this service's perspective; a separate catalog process owns it.
type Product struct {
	ID       int     `bson:"_id" json:"_id"`
	Name     string  `bson:"name" json:"name"`
	Category string  `bson:"category" json:"category"`
	Price    float64 `bson:"price" json:"price"`
	Image    string  `bson:"image" json:"image"`
}
