// Package builders provides fluent transaction builder helpers for testing
// platform configs and referrers. Pool transactions have their own builders
// in the amm test package.
package builders
