package models

// SyncSettings is the administrative sync configuration kept in the local
// settings table. The reconciler reads it fresh at the start of every cycle;
// none of the values are cached across cycles.
type SyncSettings struct {
	// Enabled gates the whole sync subsystem. It is switched off
	// automatically when a cycle fails unrecoverably.
	Enabled bool `json:"enabled"`

	// KeyMaterial is the base64 encoded secret the snapshot encryption key
	// is derived from.
	KeyMaterial string `json:"key_material"`

	// SyncKeyID selects which remote slot this client synchronizes against.
	SyncKeyID string `json:"sync_key_id"`
}
