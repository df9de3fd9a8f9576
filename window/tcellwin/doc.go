// Package tcellwin implements weld.Window on a tcell screen.
//
// One viewport unit is one terminal cell. Rectangles are painted as cell
// backgrounds and text is drawn left-aligned on the middle row of its box.
// The primary mouse button maps to weld.Pressed and weld.Released;
// Ctrl+C and Esc close the window. Every other key is delivered as a
// weld.PlatformEvent carrying the *tcell.EventKey.
package tcellwin
