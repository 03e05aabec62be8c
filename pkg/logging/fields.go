package logging

import "time"

// Field constructors for the attributes the tools log most.

// Path creates a file path field.
func Path(p string) Field {
	return Field{Key: "path", Value: p}
}

// ChannelID creates a channel identifier field.
func ChannelID(id string) Field {
	return Field{Key: "channel_id", Value: id}
}

// Scid creates a short channel id field.
func Scid(scid uint64) Field {
	return Field{Key: "scid", Value: scid}
}

// Pubkey creates a node public key field.
func Pubkey(pk string) Field {
	return Field{Key: "pubkey", Value: pk}
}

// Alias creates a node alias field.
func Alias(a string) Field {
	return Field{Key: "alias", Value: a}
}

// Count creates a generic count field.
func Count(n int) Field {
	return Field{Key: "count", Value: n}
}

// Msat creates a millisatoshi amount field.
func Msat(amt int64) Field {
	return Field{Key: "msat", Value: amt}
}

// Latency creates a duration field in milliseconds.
func Latency(d time.Duration) Field {
	return Field{Key: "latency_ms", Value: d.Milliseconds()}
}

// Err creates an error field. Nil errors log as null.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}
