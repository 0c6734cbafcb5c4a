//go:build !amd64 && !arm64

package gray8

const hasWideDecimate = false
