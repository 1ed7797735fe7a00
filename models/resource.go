package models

// ResourceClass identifies a category of bookable inventory.
type ResourceClass string

const (
	ResourceRoom         ResourceClass = "room"
	ResourceCottage      ResourceClass = "cottage"
	ResourceFunctionHall ResourceClass = "function_hall"
)

// Valid reports whether the class is one of the known inventory categories.
func (rc ResourceClass) Valid() bool {
	switch rc {
	case ResourceRoom, ResourceCottage, ResourceFunctionHall:
		return true
	}
	return false
}

// Fixed inventories for the room and cottage classes. Function hall titles
// are loaded from the resource collection at startup.
var (
	RoomInventory = []string{"Room 01", "Room 02", "Room 03", "Room 04"}

	CottageInventory = []string{"Standard Cottage", "Open Cottage", "Family Cottage"}
)

// Resource is a persisted inventory record. Only function halls are stored;
// rooms and cottages ship as fixed inventory.
type Resource struct {
	ID    string        `bson:"id" json:"id"`
	Class ResourceClass `bson:"class" json:"class"`
	Title string        `bson:"title" json:"title"`
}
