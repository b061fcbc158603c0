// Package hrsize converts raw byte counts into human-readable strings such as
// "10.0 KB" and orders values rendered that way, under decimal (1000-based)
// or binary (1024-based) unit systems up to exa scale.
//
// The pure functions (Reduce, FormatSize, FormatBig, CompareSizes) take an
// explicit Settings value and are safe for concurrent use. The package-level
// Configure, ToHumanReadable and Compare functions keep the traditional
// implicit process-wide configuration, backed by a single locked Store.
package hrsize

import "math/big"

// Configure applies overrides to the process-wide default store. Validation
// is all-or-nothing: on error no setting changes.
func Configure(opts Options) error {
	return defaultStore.Configure(opts)
}

// ToHumanReadable converts size using the process-wide settings. Overrides in
// opts apply to this call only; use Configure to change the defaults.
func ToHumanReadable(size int64, opts ...Options) (string, error) {
	return defaultStore.ToHumanReadable(size, opts...)
}

// ToHumanReadableBig is ToHumanReadable for sizes beyond the int64 range.
func ToHumanReadableBig(n *big.Int, opts ...Options) (string, error) {
	return defaultStore.ToHumanReadableBig(n, opts...)
}

// Compare orders two previously formatted sizes using the process-wide
// settings. See CompareSizes for the ordering policy.
func Compare(a, b Size, opts ...Options) (int, error) {
	return defaultStore.Compare(a, b, opts...)
}
