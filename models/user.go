package models

// Account creation methods.
const (
	MethodLocal  = "local"
	MethodGoogle = "google"
)

type User struct {
	ID       int    `bson:"_id" json:"_id"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"` // stored as-is; empty for federated accounts
	Method   string `bson:"method" json:"method"`
}
