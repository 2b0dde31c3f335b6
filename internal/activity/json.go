package activity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/julianstephens/heatcal/internal/calendar"
)

// UnmarshalJSON accepts either {"descriptions": [...]} or a bare array of
// descriptions.
func (a *Activity) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var descs []string
		if err := json.Unmarshal(trimmed, &descs); err != nil {
			return err
		}
		a.Descriptions = descs
		return nil
	}

	var obj struct {
		Descriptions []string `json:"descriptions"`
	}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}
	a.Descriptions = obj.Descriptions
	return nil
}

// DecodeJSON reads an activity file. Every key must be a valid YYYY-MM-DD date.
func DecodeJSON(r io.Reader) (Data, error) {
	var raw map[string]Activity
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode activity data: %w", err)
	}

	data := make(Data, len(raw))
	for key, a := range raw {
		d, err := calendar.ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("invalid activity key %q: %w", key, err)
		}
		// Normalise so lookups by Cell.Key always hit.
		data[d.Key()] = a
	}
	return data, nil
}

// EncodeJSON writes data in the object form read by DecodeJSON.
func EncodeJSON(w io.Writer, data Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode activity data: %w", err)
	}
	return nil
}
