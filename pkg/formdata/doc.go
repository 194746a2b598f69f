// Package formdata reads and writes nested form snapshots, the decoded JSON
// documents a comparison form keeps per pane. Paths use the same dotted
// grammar as the rest of the module; numeric indices address list positions
// while placeholder ids, which only exist client side, are not addressable
// here. The package also bridges resolved copy plans to RFC 6902 patches so
// a persisted snapshot can be updated through the standard patch machinery.
package formdata
