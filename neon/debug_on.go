//go:build neondebug

package neon

const debugChecks = true
