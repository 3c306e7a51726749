// Package scheduling holds the booking rules of the shop: block rule matching, slot
// availability, waitlist promotion and commission. It works on snapshots handed in by the
// services and never reads storage or the clock on its own.
package scheduling
