package system

// Key is a Linux input event key code (input-event-codes.h).
type Key struct {
	Name string
	Code uint16
}

var (
	KeyEsc = Key{Name: "Esc", Code: 1}
	KeyQ   = Key{Name: "Q", Code: 16}
	KeyF4  = Key{Name: "F4", Code: 62}
)

// ExitKeys close a displayed image.
var ExitKeys = []Key{KeyEsc, KeyQ, KeyF4}
