package domain

// UniqueObjectsFirstParticipant is the number of the first participant
// whose first scene contains unique objects only. The capture protocol
// gained this feature partway through the study; earlier participants
// may repeat objects in every scene.
const UniqueObjectsFirstParticipant = 26

// StartToken is prepended to packing sequences on request, for sequence
// models that need an explicit start symbol.
const StartToken = "<start>"

// AllObjects lists the clean names of every object in the dataset.
var AllObjects = []string{
	"002 masterchef can", "003 cracker box", "004 sugar box",
	"005 tomato soup can", "006 mustard bottle", "007 tuna fish can",
	"008 pudding box", "010 potted meat can", "011 banana",
	"012 strawberry", "013 apple", "014 lemon", "015 peach", "016 pear",
	"017 orange", "018 plum", "021 bleach cleanser", "025 mug",
	"057 racquetball", "058 golf ball", "100 half egg carton",
	"101 bread", "102 toothbrush", "103 toothpaste",
}

// IsKnownObject reports whether name is part of the object catalog.
func IsKnownObject(name string) bool {
	for _, obj := range AllObjects {
		if obj == name {
			return true
		}
	}
	return false
}

// GraspKind selects between the two grasp pose families of the dataset.
type GraspKind string

// Available grasp kinds.
const (
	// GraspPick is the pose at which the object was picked up.
	GraspPick GraspKind = "pick"

	// GraspPlace is the pose at which the object was placed in the box.
	GraspPlace GraspKind = "place"
)

// IsValid returns true if the grasp kind is recognised.
func (k GraspKind) IsValid() bool {
	return k == GraspPick || k == GraspPlace
}

// String returns the string representation.
func (k GraspKind) String() string {
	return string(k)
}
