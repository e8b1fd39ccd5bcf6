package model

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// ParseStringList decodes a JSON array column. Empty or malformed content
// yields an empty slice; corruption is logged, never returned.
func ParseStringList(raw, field, owner string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn().Err(err).Str("field", field).Str("owner", owner).Str("raw", raw).Msg("Malformed JSON array column, using empty value")
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func EncodeStringList(values []string) string {
	if values == nil {
		values = []string{}
	}
	buf, err := json.Marshal(values)
	if err != nil {
		// []string always marshals
		return "[]"
	}
	return string(buf)
}
