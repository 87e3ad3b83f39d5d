package models

// Cart holds the pending line items for exactly one user. Invariant: at most
// one item per product id; repeated adds increment the existing count.
type Cart struct {
	ID     int        `bson:"_id" json:"_id"`
	UserID int        `bson:"userId" json:"userId"`
	Items  []CartItem `bson:"items" json:"items"`
}

// CartItem is a single (product, count) line. The bson field for the product
// id is "id", matching the stored document shape.
type CartItem struct {
	ProductID int `bson:"id" json:"id"`
	Count     int `bson:"count" json:"count"`
}

// CartLine is one row of the priced cart view: a cart item joined against
// the burgers collection.
type CartLine struct {
	ProductID int     `bson:"_id" json:"_id"`
	Name      string  `bson:"name" json:"name"`
	Image     string  `bson:"image" json:"image"`
	Count     int     `bson:"count" json:"count"`
	Price     float64 `bson:"price" json:"price"`
}
