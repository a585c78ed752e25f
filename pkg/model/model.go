// Package model holds the serializable DTOs that cross package boundaries:
// parser output, writer input, and repository records. None of these types
// carry behavior; they exist so internal/colocation's domain types don't
// need JSON/GORM struct tags of their own.
package model

import "time"

// InstanceRecord is the wire/row representation of one spatial instance,
// matching the CSV column set.
type InstanceRecord struct {
	Feature string  `json:"feature" csv:"feature"`
	Idx     int     `json:"idx" csv:"idx"`
	X       float64 `json:"x" csv:"x"`
	Y       float64 `json:"y" csv:"y"`
}

// ParseResult is what a Parser produces: the decoded instances plus any
// non-fatal warnings (e.g. a tolerated duplicate header alias).
type ParseResult struct {
	Instances []InstanceRecord
	Warnings  []string
}

// PrevalentPatternRecord is the persisted/exported form of one prevalent
// colocation type.
type PrevalentPatternRecord struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	MiningRunID  uint      `json:"mining_run_id" gorm:"index"`
	Features     string    `json:"features" gorm:"index"` // comma-joined, sorted
	FeatureCount int       `json:"feature_count"`
	PI           float64   `json:"pi"`
	CreatedAt    time.Time `json:"created_at"`
}

// MiningRunRecord is the persisted/exported form of one pipeline
// invocation, summarizing its configuration and headline results.
type MiningRunRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Scheme        string    `json:"scheme"`
	MinDist       float64   `json:"min_dist"`
	MinPrev       float64   `json:"min_prev"`
	InstanceCount int       `json:"instance_count"`
	CliqueCount   int       `json:"clique_count"`
	SourcePath    string    `json:"source_path"`
	CreatedAt     time.Time `json:"created_at"`

	Patterns []PrevalentPatternRecord `json:"patterns,omitempty" gorm:"foreignKey:MiningRunID"`
}
