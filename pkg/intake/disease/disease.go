// Package disease defines the closed set of detectable conditions and the
// store keys their capture screens write.
package disease

import "mediscan-kiosk/pkg/intake/store"

// ID identifies one of the four supported detection flows.
type ID string

const (
	Eyes      ID = "eyes"
	Breathing ID = "breathing"
	Skin      ID = "skin"
	Dengue    ID = "dengue"
)

// All lists the supported diseases in selection-screen order.
func All() []ID {
	return []ID{Eyes, Breathing, Skin, Dengue}
}

// Valid reports whether raw names a supported disease.
func Valid(raw string) bool {
	switch ID(raw) {
	case Eyes, Breathing, Skin, Dengue:
		return true
	}
	return false
}

// MediaKeys returns the store keys the disease's capture screen persists.
// Breathing is the only flow with two artifacts (X-ray image plus audio).
func (id ID) MediaKeys() []string {
	switch id {
	case Eyes:
		return []string{store.KeyEyesPhoto}
	case Breathing:
		return []string{store.KeyBreathingXray, store.KeyBreathingAudio}
	case Skin:
		return []string{store.KeySkinPhoto}
	case Dengue:
		return []string{store.KeyDenguePhoto}
	}
	return nil
}
