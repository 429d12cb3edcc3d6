package common

import (
	"fmt"
	"strings"
)

// Key is a virtual key code for cross-platform input handling.
// Values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key uint32

const (
	KeyW         Key = 87  // W key (ASCII)
	KeyA         Key = 65  // A key (ASCII)
	KeyS         Key = 83  // S key (ASCII)
	KeyD         Key = 68  // D key (ASCII)
	KeyQ         Key = 81  // Q key (ASCII)
	KeyE         Key = 69  // E key (ASCII)
	KeyR         Key = 82  // R key (ASCII)
	KeyF         Key = 70  // F key (ASCII)
	KeyC         Key = 67  // C key (ASCII)
	KeyX         Key = 88  // X key (ASCII)
	KeyZ         Key = 90  // Z key (ASCII)
	KeySpace     Key = 32  // Spacebar (ASCII)
	KeyBackspace Key = 259 // Backspace key (GLFW)
	KeyEsc       Key = 256 // Escape key (GLFW)
	KeyHome      Key = 268 // Home key (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    Key = 340 // Left Shift (GLFW)
	KeyLeftControl  Key = 341 // Left Control (GLFW)
	KeyRightShift   Key = 344 // Right Shift (GLFW)
	KeyRightControl Key = 345 // Right Control (GLFW)
)

var keyNames = map[Key]string{
	KeyW:            "W",
	KeyA:            "A",
	KeyS:            "S",
	KeyD:            "D",
	KeyQ:            "Q",
	KeyE:            "E",
	KeyR:            "R",
	KeyF:            "F",
	KeyC:            "C",
	KeyX:            "X",
	KeyZ:            "Z",
	KeySpace:        "Space",
	KeyBackspace:    "Backspace",
	KeyEsc:          "Escape",
	KeyHome:         "Home",
	KeyLeftShift:    "LeftShift",
	KeyLeftControl:  "LeftControl",
	KeyRightShift:   "RightShift",
	KeyRightControl: "RightControl",
}

// AllKeys returns every key with a known name, used by pollers that have to ask
// the platform about each key individually.
//
// Returns:
//   - []Key: the named keys
func AllKeys() []Key {
	keys := make([]Key, 0, len(keyNames))
	for k := range keyNames {
		keys = append(keys, k)
	}
	return keys
}

// String returns the key's name, or its numeric code if it has none.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint32(k))
}

// ParseKey resolves a key name (case-insensitive) back to its Key.
//
// Parameters:
//   - name: the key name as produced by Key.String
//
// Returns:
//   - Key: the matching key
//   - error: error if no key has that name
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// MarshalText encodes the key by name so config files stay readable.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a key name written by MarshalText.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
