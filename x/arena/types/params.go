package types

// Params holds configurable parameters for the arena module.
type Params struct {
	SessionTimeLimitSeconds uint64 `json:"session_time_limit_seconds" yaml:"session_time_limit_seconds"`
	MaxNameLength           uint32 `json:"max_name_length" yaml:"max_name_length"`
}
