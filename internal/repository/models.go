// Package repository provides database abstraction for persisted mining
// runs and their prevalent colocation patterns.
package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/yshekhar/cliquecoloc/pkg/model"
)

// MiningRun represents the mining_run table: one row per pipeline
// invocation, carrying its configuration and headline counts.
type MiningRun struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Scheme        string    `gorm:"column:scheme;type:varchar(16)"`
	MinDist       float64   `gorm:"column:min_dist"`
	MinPrev       float64   `gorm:"column:min_prev"`
	InstanceCount int       `gorm:"column:instance_count"`
	CliqueCount   int       `gorm:"column:clique_count"`
	SourcePath    string    `gorm:"column:source_path;type:varchar(512)"`
	CreateTime    time.Time `gorm:"column:create_time;autoCreateTime"`
}

// TableName returns the table name for MiningRun.
func (MiningRun) TableName() string {
	return "mining_run"
}

// ToModel converts MiningRun to model.MiningRunRecord.
func (r *MiningRun) ToModel() *model.MiningRunRecord {
	return &model.MiningRunRecord{
		ID:            uint(r.ID),
		Scheme:        r.Scheme,
		MinDist:       r.MinDist,
		MinPrev:       r.MinPrev,
		InstanceCount: r.InstanceCount,
		CliqueCount:   r.CliqueCount,
		SourcePath:    r.SourcePath,
		CreatedAt:     r.CreateTime,
	}
}

// PrevalentPatternRow represents the prevalent_pattern table: one row per
// prevalent colocation type discovered by a mining run.
type PrevalentPatternRow struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MiningRunID  int64     `gorm:"column:mining_run_id;index"`
	Features     string    `gorm:"column:features;type:varchar(512);index"`
	FeatureCount int       `gorm:"column:feature_count"`
	PI           float64   `gorm:"column:pi"`
	CreateTime   time.Time `gorm:"column:create_time;autoCreateTime"`
}

// TableName returns the table name for PrevalentPatternRow.
func (PrevalentPatternRow) TableName() string {
	return "prevalent_pattern"
}

// ToModel converts PrevalentPatternRow to model.PrevalentPatternRecord.
func (r *PrevalentPatternRow) ToModel() model.PrevalentPatternRecord {
	return model.PrevalentPatternRecord{
		ID:           uint(r.ID),
		MiningRunID:  uint(r.MiningRunID),
		Features:     r.Features,
		FeatureCount: r.FeatureCount,
		PI:           r.PI,
		CreatedAt:    r.CreateTime,
	}
}

// JSONField is a custom type for handling JSON fields in GORM.
type JSONField []byte

// Value implements driver.Valuer interface.
func (j JSONField) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return []byte(j), nil
}

// Scan implements sql.Scanner interface.
func (j *JSONField) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = []byte(v)
		return nil
	default:
		return errors.New("unsupported type for JSONField")
	}
}

// MarshalJSON implements json.Marshaler interface.
func (j JSONField) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (j *JSONField) UnmarshalJSON(data []byte) error {
	if data == nil || string(data) == "null" {
		*j = nil
		return nil
	}
	*j = append((*j)[0:0], data...)
	return nil
}
