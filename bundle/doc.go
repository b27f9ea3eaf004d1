// Package bundle loads template bundles and renders them to files. A bundle
// is a directory holding a template.yaml manifest and the source skeletons it
// lists. Rendering expands every file in memory first; nothing is written
// unless all files expand cleanly.
//
// The MVI SwiftUI view bundle is embedded and returned by Default.
package bundle
