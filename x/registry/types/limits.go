package types

const (
	// MaxNameLength caps registered names at 32 characters.
	MaxNameLength = 32
	// CooldownSeconds is the fixed window blocking owner-initiated mutations
	// after an ownership-affecting change.
	CooldownSeconds int64 = 86400
)
