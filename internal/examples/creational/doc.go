// Package creational demonstrates patterns that control how objects are
// created: Singleton, Factory Method, Abstract Factory, Builder and
// Prototype.
package creational
