package savefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vindec/internal/source"
	"vindec/internal/vin"
	"vindec/pkg/log"

	"go.uber.org/zap"
)

// FileName is the save file the game writes car part data to.
const FileName = "carparts.txt"

// ErrNoVINData is returned when a save file has no VIN dictionary.
var ErrNoVINData = errors.New("no VIN data found in file")

// SaveFile is a Source reading the VIN from a game save file.
type SaveFile struct {
	path string
}

func New(path string) *SaveFile {
	return &SaveFile{path: path}
}

var _ source.Source = (*SaveFile)(nil)

func (s *SaveFile) Name() string {
	return s.path
}

func (s *SaveFile) Path() string {
	return s.path
}

// Entries reads the raw VIN dictionary from the save file.
func (s *SaveFile) Entries(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.path == "" {
		return nil, fmt.Errorf("no save file path set")
	}
	buf, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	log.Debug("read save file", zap.String("path", s.path), zap.Int("bytes", len(buf)))

	entries, err := ParseEntries(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return entries, nil
}

// ReadVIN assembles the VIN from the dictionary values in field order.
func (s *SaveFile) ReadVIN(ctx context.Context) (string, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return "", err
	}
	return AssembleVIN(entries)
}

// AssembleVIN joins entry values in VIN field order. Every field must be
// present with exactly its VIN width, so no value can spill into the range
// of a neighbouring field.
func AssembleVIN(entries []Entry) (string, error) {
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = unwrapValue(e.Value)
	}

	var sb strings.Builder
	for _, f := range vin.Fields() {
		v, ok := values[f.Key]
		if !ok {
			return "", fmt.Errorf("%w: save file has no %s field", vin.ErrInvalidFormat, f.Key)
		}
		if len(v) != f.Len {
			return "", fmt.Errorf("%w: save file field %s is %q (expected %d characters)", vin.ErrInvalidFormat, f.Key, v, f.Len)
		}
		sb.WriteString(v)
	}
	return sb.String(), nil
}

// unwrapValue strips the string(...) wrapper some saves carry.
func unwrapValue(v string) string {
	if strings.HasPrefix(v, "string(") && strings.HasSuffix(v, ")") {
		return v[len("string(") : len(v)-1]
	}
	return v
}

// DefaultPath returns where the game keeps its save on Windows, or "" when
// USERPROFILE is not set.
func DefaultPath() string {
	profile := os.Getenv("USERPROFILE")
	if profile == "" {
		return ""
	}
	return filepath.Join(profile, "AppData", "LocalLow", "Amistech", "My Winter Car", FileName)
}
