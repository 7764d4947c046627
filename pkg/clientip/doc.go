// Package clientip extracts the originating client address from HTTP
// requests, honoring common proxy headers and rejecting spoofed values.
package clientip
