package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// RecordVersion is the schema version written by SaveRecord.
const RecordVersion = 1

// ErrUnsupportedVersion is returned for records written by a newer binary.
var ErrUnsupportedVersion = errors.New("unsupported record version")

// envelope wraps every persisted document. Records saved before versioning
// have no "version" field and are the bare document.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// SaveRecord marshals v into a versioned envelope stored under key.
func SaveRecord(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	raw, err := json.Marshal(envelope{Version: RecordVersion, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Save(ctx, key, raw)
}

// LoadRecord decodes the record under key into v.
//
// v should hold defaults on entry: unversioned legacy records are merged
// onto them field by field. It returns ErrNotFound when key was never saved
// and ErrUnsupportedVersion for a version newer than RecordVersion.
func LoadRecord(ctx context.Context, s Store, key string, v any) error {
	raw, err := s.Load(ctx, key)
	if err != nil {
		return err
	}
	return DecodeRecord(raw, v)
}

// DecodeRecord is LoadRecord without the store round trip.
func DecodeRecord(raw []byte, v any) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	vRaw, versioned := probe["version"]
	if !versioned {
		// legacy
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("decode legacy record: %w", err)
		}
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if env.Version > RecordVersion || env.Version < 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, vRaw)
	}
	if env.Version == 0 {
		return json.Unmarshal(raw, v)
	}
	if len(env.Data) == 0 {
		return errors.New("decode record: missing data")
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}
