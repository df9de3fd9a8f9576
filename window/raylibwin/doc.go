// Package raylibwin implements weld.Window on a raylib (OpenGL) window.
//
// raylib must be driven from the main OS thread, so the window runs its
// own draw loop there through Run while the weld driver runs on another
// goroutine. Submitted frames are drawn on the next tick and acknowledged
// with a weld.RenderCompleteEvent; the left mouse button maps to
// weld.Pressed and weld.Released.
package raylibwin
