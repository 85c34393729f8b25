package model

// VersionInfo reports the running build, the applied schema version and
// which optional calculator features are switched on.
// MigrationMessage is only set when MigrationNeeded is true.
type VersionInfo struct {
	AppVersion       string          `json:"app_version"`
	DbVersion        string          `json:"db_version"`
	Features         map[string]bool `json:"features"`
	MigrationNeeded  bool            `json:"migration_needed"`
	MigrationMessage *string         `json:"migration_message,omitempty"`
}
