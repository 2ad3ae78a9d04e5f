// Package behavioral demonstrates patterns about how objects communicate
// and change behavior: Memento, Observer, State and Strategy.
package behavioral
