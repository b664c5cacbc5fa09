package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode reads one message from JSON. It never fails: payloads that are not
// objects, or whose discriminators name no variant, become an UnknownMessage.
// Extra fields of the wrong JSON type read as zero values.
func Decode(raw []byte) Message {
	raw = bytes.TrimSpace(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return UnknownMessage{Raw: clone(raw)}
	}

	rec := Record{
		ID:       intField(fields, "id"),
		Source:   Source(discriminator(fields["source"])),
		Type:     Type(discriminator(fields["type"])),
		Avatar:   stringField(fields, "avatar"),
		UserID:   intField(fields, "userId"),
		Text:     stringField(fields, "text"),
		ImageURL: stringField(fields, "imageUrl"),
	}

	msg := rec.Message()
	if u, ok := msg.(UnknownMessage); ok {
		u.Raw = clone(raw)
		return u
	}
	return msg
}

// DecodeList reads a JSON array of messages, decoding each element with Decode
func DecodeList(raw []byte) ([]Message, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode message list: %w", err)
	}

	messages := make([]Message, 0, len(items))
	for _, item := range items {
		messages = append(messages, Decode(item))
	}
	return messages, nil
}

// discriminator returns a string value as-is and any other JSON value as its
// literal text, so 42 and "42" read the same. Missing and null read as "".
func discriminator(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	text := string(bytes.TrimSpace(raw))
	if text == "null" {
		return ""
	}
	return text
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if raw, ok := fields[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

func intField(fields map[string]json.RawMessage, key string) int {
	raw, ok := fields[key]
	if !ok {
		return 0
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	// 1.0 and friends
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	return 0
}

func clone(raw []byte) json.RawMessage {
	if len(raw) == 0 || !json.Valid(raw) {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}
