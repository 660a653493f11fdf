// Package kernel holds the value objects shared by every aggregate of the
// restaurant domain. Today that is the UUID identifier used for customers
// and orders.
package kernel
