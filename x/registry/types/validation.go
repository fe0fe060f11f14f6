package types

import (
	"namechain/ledger"
)

// ValidateName enforces the name format rule: 1..32 characters, each
// alphanumeric or '-'.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidNameFormat.Wrap("name is empty")
	}
	if len(name) > MaxNameLength {
		return ErrInvalidNameFormat.Wrapf("name length %d exceeds %d", len(name), MaxNameLength)
	}
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			continue
		}
		return ErrInvalidNameFormat.Wrapf("invalid character %q", r)
	}
	return nil
}

// ValidateAddress rejects the all-zero sentinel.
func ValidateAddress(addr ledger.Address) error {
	if addr.IsZero() {
		return ErrInvalidAddress
	}
	return nil
}

// ValidateOwner checks that the signer is the name's owner.
func ValidateOwner(owner, signer ledger.Address) error {
	if owner != signer {
		return ErrNotNameOwner
	}
	return nil
}

// ValidateProgramOwner checks that the signer is the administrator.
func ValidateProgramOwner(owner, signer ledger.Address) error {
	if owner != signer {
		return ErrNotContractOwner
	}
	return nil
}

// ValidateCooldown gates mutations on the cooldown window. The boundary is
// inclusive on the "now" side: now == until passes.
func ValidateCooldown(now, until int64) error {
	if now < until {
		return ErrCooldownNotOver.Wrapf("eligible at %d, now %d", until, now)
	}
	return nil
}

// CooldownUntil returns the end of the cooldown window starting at now.
func CooldownUntil(now int64) int64 {
	return now + CooldownSeconds
}
