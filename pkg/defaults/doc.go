// Package defaults holds the constants shared by the compiler, the binder and
// the engine adapter so that every layer agrees on generated names.
package defaults
