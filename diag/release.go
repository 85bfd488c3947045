//go:build !debug

package diag

const debugEnabled = false
