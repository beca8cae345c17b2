package assemble

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"holocron/internal/convert"
	"holocron/internal/domain"
)

// ErrMissingField is returned when a record lacks a required field.
var ErrMissingField = errors.New("missing required field")

// Assembler builds entities from records and reports coercion failures.
type Assembler struct {
	log *zap.Logger
}

// New returns an Assembler that logs coercion warnings to log. A nil
// logger discards them.
func New(log *zap.Logger) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{log: log}
}

// fields reads typed values out of one record.
type fields struct {
	entity string
	rec    domain.Record
	log    *zap.Logger
}

func (a *Assembler) fields(entity string, rec domain.Record) fields {
	return fields{entity: entity, rec: rec, log: a.log}
}

// report logs a conversion failure; absent values are not reported.
func (f fields) report(key string, err error) {
	if err == nil || errors.Is(err, convert.ErrNone) {
		return
	}
	f.log.Warn("field not converted",
		zap.String("entity", f.entity),
		zap.String("field", key),
		zap.Any("value", f.rec[key]),
		zap.Error(err),
	)
}

func (f fields) required(key string) (string, error) {
	s, err := convert.String(f.rec[key])
	if err != nil {
		return "", fmt.Errorf("%s: %w: %s", f.entity, ErrMissingField, key)
	}
	return s, nil
}

func (f fields) str(key string) *string {
	s, err := convert.String(f.rec[key])
	if err != nil {
		f.report(key, err)
		return nil
	}
	return &s
}

func (f fields) integer(key string) *int {
	n, err := convert.Int(f.rec[key])
	if err != nil {
		f.report(key, err)
		return nil
	}
	return &n
}

func (f fields) float(key string) *float64 {
	v, err := convert.Float(f.rec[key])
	if err != nil {
		f.report(key, err)
		return nil
	}
	return &v
}

func (f fields) gravity(key string) *float64 {
	v, err := convert.Gravity(f.rec[key])
	if err != nil {
		f.report(key, err)
		return nil
	}
	return &v
}

func (f fields) boolean(key string) *bool {
	b, err := convert.Bool(f.rec[key])
	if err != nil {
		f.report(key, err)
		return nil
	}
	return &b
}

func (f fields) list(key, sep string) []string {
	l, err := convert.List(f.rec[key], sep)
	if err != nil {
		f.report(key, err)
		return nil
	}
	return l
}
