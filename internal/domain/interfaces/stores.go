package interfaces

import domaintypes "holocron/internal/domain/types"

// DataSource reads input files from the configured data directory.
type DataSource interface {
	CSVRecords(name string) ([]domaintypes.Record, error)
	JSONRecords(name string) ([]domaintypes.Record, error)
}

// ArtifactWriter persists derived JSON artifacts and the run manifest.
type ArtifactWriter interface {
	Write(name string, v any) (domaintypes.ManifestEntry, error)
	WriteManifest() (domaintypes.Manifest, error)
}

// ResourceCache keeps SWAPI responses between runs.
type ResourceCache interface {
	LoadResource(url string) (domaintypes.Record, bool, error)
	SaveResource(url string, rec domaintypes.Record) error
}
