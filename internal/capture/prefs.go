package capture

// deviceKey is where the selected input device name is persisted.
const deviceKey = "last_device"

// PreferenceStore persists the selected capture device between runs.
// fyne's Preferences satisfies it directly.
type PreferenceStore interface {
	String(key string) string
	SetString(key, value string)
	RemoveValue(key string)
}

// LoadPreferredDevice returns the saved device name, or "" for the
// system default.
func LoadPreferredDevice(p PreferenceStore) string {
	return p.String(deviceKey)
}

// SavePreferredDevice records the user's choice. An empty name reverts
// to the system default and clears the stored value.
func SavePreferredDevice(p PreferenceStore, name string) {
	if name == "" {
		p.RemoveValue(deviceKey)
		return
	}
	p.SetString(deviceKey, name)
}
