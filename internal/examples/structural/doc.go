// Package structural demonstrates patterns that compose objects into
// larger structures: Adapter, Decorator, Facade and Proxy.
package structural
