// Package domain contains the core domain entities and types used by the
// application. These types represent the scheduling concepts (parties, free
// slots, candidate intervals and their scores) and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
