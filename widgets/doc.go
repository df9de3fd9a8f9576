// Package widgets provides the stock components: Panel, Label, Button
// and Splitter. Each widget keeps its visual data (caption, fill colour)
// in the component's data bag so renderers and tests can read it back.
package widgets
