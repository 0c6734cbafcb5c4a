//go:build amd64 || arm64

package gray8

// Unaligned 64 bit loads are cheap on these targets, so the packed
// word-at-a-time decimation kernel pays off.
const hasWideDecimate = true
