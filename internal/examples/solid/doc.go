// Package solid demonstrates the five SOLID principles with small
// invoice, payment and messaging scenarios.
package solid
