package swapbuf

import "strings"

// Access is the intent of a caller locking a resource.
type Access uint8

const (
	// Generic access is for lockers that do not care how a resource is used,
	// only that one goroutine holds it at a time.
	Generic Access = 1 << iota

	// Read access intends to only read the resource.
	Read

	// Write access intends to modify the resource.
	Write
)

func (a Access) String() string {
	if a == 0 {
		return "None"
	}
	var parts []string
	if a&Generic != 0 {
		parts = append(parts, "Generic")
	}
	if a&Read != 0 {
		parts = append(parts, "Read")
	}
	if a&Write != 0 {
		parts = append(parts, "Write")
	}
	if rest := a &^ (Generic | Read | Write); rest != 0 {
		parts = append(parts, "Unknown")
	}
	return strings.Join(parts, "|")
}
