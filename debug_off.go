//go:build !spritequaddebug

package spritequad

const debugChecks = false
