// Package service wires storage, parsing, mining, and persistence into a
// single pipeline entry point for the CLI and any future callers.
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/yshekhar/cliquecoloc/internal/colocation"
	"github.com/yshekhar/cliquecoloc/internal/parser"
	"github.com/yshekhar/cliquecoloc/internal/parser/instancecsv"
	"github.com/yshekhar/cliquecoloc/internal/repository"
	"github.com/yshekhar/cliquecoloc/internal/storage"
	"github.com/yshekhar/cliquecoloc/pkg/config"
	"github.com/yshekhar/cliquecoloc/pkg/model"
	"github.com/yshekhar/cliquecoloc/pkg/utils"
)

var tracer = otel.Tracer("cliquecoloc/service")

// RunParams configures a single end-to-end mining pipeline invocation.
type RunParams struct {
	// SourceKey is the storage key (or local path) of the input instance file.
	SourceKey string
	MinDist   float64
	MinPrev   float64
	Scheme    colocation.Scheme
	Workers   int
	// Persist, when true, saves the run and its patterns via the repository.
	Persist bool
}

// Service is the main application service: it owns the database connection
// and object storage backend, and exposes Run as the single pipeline
// entry point.
type Service struct {
	config  *config.Config
	logger  utils.Logger
	db      *repository.Repositories
	storage storage.Storage
	parsers *parser.Registry

	running bool
}

// New creates a new Service instance.
func New(cfg *config.Config, logger utils.Logger) (*Service, error) {
	if logger == nil {
		logger = utils.NewDefaultLogger(utils.LevelInfo, nil)
	}

	registry := parser.NewRegistry()
	registry.Register("csv", instancecsv.New(true))

	return &Service{
		config:  cfg,
		logger:  logger,
		parsers: registry,
	}, nil
}

// Initialize initializes all service components.
func (s *Service) Initialize(ctx context.Context) error {
	s.logger.Info("Initializing service components...")

	if err := s.initDatabase(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := s.initStorage(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	s.running = true
	s.logger.Info("Service components initialized successfully")
	return nil
}

// initDatabase initializes the database connection and repositories.
func (s *Service) initDatabase() error {
	s.logger.Info("Connecting to database (%s)...", s.config.Database.Type)

	dbConfig := &repository.DBConfig{
		Type:     s.config.Database.Type,
		Host:     s.config.Database.Host,
		Port:     s.config.Database.Port,
		Database: s.config.Database.Database,
		User:     s.config.Database.User,
		Password: s.config.Database.Password,
		MaxConns: s.config.Database.MaxConns,
	}

	gormDB, err := repository.NewGormDB(dbConfig)
	if err != nil {
		return err
	}

	s.db = repository.NewRepositories(gormDB, s.config.Database.Type)
	s.logger.Info("Database connection established")

	return nil
}

// InitializeStorageOnly initializes just the storage backend, for callers
// that only need to mine without persisting results.
func (s *Service) InitializeStorageOnly() error {
	if err := s.initStorage(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	s.running = true
	return nil
}

// initStorage initializes the object storage.
func (s *Service) initStorage() error {
	s.logger.Info("Initializing storage (%s)...", s.config.Storage.Type)

	store, err := storage.NewStorage(&s.config.Storage)
	if err != nil {
		return err
	}

	s.storage = store
	s.logger.Info("Storage initialized")

	return nil
}

// Run executes the full pipeline for one input file: fetch from storage,
// parse into instances, mine colocation patterns, and optionally persist
// the run.
func (s *Service) Run(ctx context.Context, params RunParams) (*colocation.MiningResult, error) {
	ctx, span := tracer.Start(ctx, "service.Run")
	defer span.End()

	parseResult, err := s.fetchAndParse(ctx, params.SourceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	instances := make([]colocation.Instance, len(parseResult.Instances))
	for i, rec := range parseResult.Instances {
		instances[i] = colocation.Instance{Feature: rec.Feature, Idx: rec.Idx, X: rec.X, Y: rec.Y}
	}

	dataset, err := colocation.NewSpatialDataset(instances)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset: %w", err)
	}

	result, err := colocation.Mine(ctx, dataset, params.MinDist, params.MinPrev, params.Scheme, params.Workers)
	if err != nil {
		return nil, fmt.Errorf("mining failed: %w", err)
	}

	if params.Persist && s.db != nil {
		if err := s.persist(ctx, params.SourceKey, result); err != nil {
			return nil, fmt.Errorf("failed to persist mining run: %w", err)
		}
	}

	return result, nil
}

// fetchAndParse downloads sourceKey from storage and parses it with the CSV
// instance parser.
func (s *Service) fetchAndParse(ctx context.Context, sourceKey string) (*model.ParseResult, error) {
	ctx, span := tracer.Start(ctx, "service.fetchAndParse")
	defer span.End()

	rc, err := s.storage.Download(ctx, sourceKey)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, err
	}

	p, ok := s.parsers.Get("csv")
	if !ok {
		return nil, fmt.Errorf("no csv parser registered")
	}

	return p.Parse(ctx, &buf)
}

// persist stores the mining run and its prevalent patterns.
func (s *Service) persist(ctx context.Context, sourcePath string, result *colocation.MiningResult) error {
	run := &model.MiningRunRecord{
		Scheme:        string(result.Scheme),
		MinDist:       result.MinDist,
		MinPrev:       result.MinPrev,
		InstanceCount: result.InstanceCount,
		CliqueCount:   result.CliqueCount,
		SourcePath:    sourcePath,
		CreatedAt:     time.Now(),
	}

	runID, err := s.db.Run.SaveRun(ctx, run)
	if err != nil {
		return err
	}

	patterns := make([]model.PrevalentPatternRecord, len(result.Patterns))
	for i, p := range result.Patterns {
		patterns[i] = model.PrevalentPatternRecord{
			Features:     strings.Join(p.Features, ","),
			FeatureCount: len(p.Features),
			PI:           p.PI,
		}
	}

	return s.db.Pattern.SavePatterns(ctx, runID, patterns)
}

// Stop stops the service gracefully.
func (s *Service) Stop() error {
	s.logger.Info("Stopping service...")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection: %v", err)
		}
	}

	s.running = false
	s.logger.Info("Service stopped")

	return nil
}

// IsRunning returns whether the service is running.
func (s *Service) IsRunning() bool {
	return s.running
}

// ServiceStats holds service statistics.
type ServiceStats struct {
	Running bool `json:"running"`
}

// Stats returns service statistics.
func (s *Service) Stats() ServiceStats {
	return ServiceStats{Running: s.running}
}

// HealthCheck performs a health check on the service.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.HealthCheck(ctx); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}
	}
	return nil
}
