// Package store provides the flat, durable key-value store that carries data
// between wizard steps. Each screen writes its own keys; later steps and the
// scoring screen read them back. There are no transactions, no expiry and no
// namespacing beyond the flat string keys.
package store

import "errors"

// ErrNotFound indicates the key has never been written (or was removed).
var ErrNotFound = errors.New("store: key not found")

// Store is the narrow interface screens depend on. Each screen should only
// touch the keys it owns; the key constants below are the full set.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Persisted keys. Binary artifacts are stored base64-encoded with a
// data-URL prefix (see EncodeArtifact).
const (
	KeyLanguage       = "selectedLanguage"
	KeyAge            = "userAge"
	KeyGender         = "selectedGender"
	KeyPatientPhoto   = "patientPhoto"
	KeyCNICPhoto      = "cnicPhoto"
	KeyPhoneNumber    = "phoneNumber"
	KeyDisease        = "selectedDisease"
	KeyBreathingXray  = "breathingXray"
	KeyBreathingAudio = "breathingAudio"
	KeyEyesPhoto      = "eyesPhoto"
	KeySkinPhoto      = "skinPhoto"
	KeyDenguePhoto    = "denguePhoto"
	KeyAnswers        = "questionnaireAnswers"
)

// Age bracket values stored under KeyAge.
const (
	AgeUnder18 = "under18"
	AgeAbove18 = "above18"
)

// MemStore is an in-memory Store for tests and dry runs.
type MemStore struct {
	data map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemStore) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemStore) Remove(key string) error {
	delete(m.data, key)
	return nil
}

// Len reports the number of stored keys. Test helper.
func (m *MemStore) Len() int {
	return len(m.data)
}
