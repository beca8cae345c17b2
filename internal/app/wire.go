package app

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"holocron/internal/assemble"
	"holocron/internal/services/pipeline"
	"holocron/internal/store"
	"holocron/internal/swapi"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Source    *store.FileSource
	Artifacts *store.ArtifactStore
	Cache     *store.ResourceCacheStore // nil when caching is off
	SWAPI     *swapi.Client
	Assembler *assemble.Assembler
	Pipeline  *pipeline.Service
	HTTP      *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout()}
	}

	// File-based stores
	source := store.NewFileSource(cfg.Paths.DataDir)
	artifacts, err := store.NewArtifactStore(cfg.Paths.OutDir)
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// SWAPI client, optionally backed by the on-disk response cache
	opts := []swapi.Option{swapi.WithLogger(log.Named("swapi"))}
	var cache *store.ResourceCacheStore
	if cfg.SWAPI.Cache {
		cache = store.NewResourceCacheStore(cfg.Paths.CacheDir)
		opts = append(opts, swapi.WithCache(cache))
	}
	client, err := swapi.New(cfg.SWAPI.BaseURL, httpClient, opts...)
	if err != nil {
		return nil, err
	}

	// High-level services
	asm := assemble.New(log.Named("assemble"))
	pipe := pipeline.New(cfg.Pipeline, source, artifacts, client, asm, log.Named("pipeline"))

	return &Wire{
		Source:    source,
		Artifacts: artifacts,
		Cache:     cache,
		SWAPI:     client,
		Assembler: asm,
		Pipeline:  pipe,
		HTTP:      httpClient,
	}, nil
}
