package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Documents created on first sign-in carry no role field and
// are treated as regular.
const (
	RoleRegular = "regular"
	RoleAdmin   = "admin"
)

// User is an identity created on first sign-in. UserUID is the external
// auth subject id; at most one document exists per email.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserUID string             `bson:"userUid" json:"userUid"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Email   string             `bson:"email" json:"email"`
	Role    string             `bson:"role,omitempty" json:"role,omitempty"`
}

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Price    float64            `bson:"price" json:"price"`
}

// Review is read-only through the API; documents are seeded out of band.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Details string             `bson:"details,omitempty" json:"details,omitempty"`
	Rating  float64            `bson:"rating,omitempty" json:"rating,omitempty"`
}

// CartItem snapshots a menu item into a user's cart. UserUID scopes every
// read and delete to the owning identity.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserUID    string             `bson:"userUid" json:"userUid"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
}

// Payment records a settled checkout. Immutable after insert; the cart
// items listed in CartItemIDs are deleted as part of settlement.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserUID       string             `bson:"userUid" json:"userUid"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        float64            `bson:"amount" json:"amount"`
	CartItemIDs   []string           `bson:"cartItemIds" json:"cartItemIds"`
	MenuItemIDs   []string           `bson:"menuItemIds,omitempty" json:"menuItemIds,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}
