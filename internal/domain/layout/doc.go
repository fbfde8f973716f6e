// Package layout contains the document layout core: the format and style
// registries, the auto-layout engine that adapts invoice content to a
// physical output target, the thermal optimizer, the pagination planner,
// and the printer capability resolver.
//
// Everything in this package is a pure computation over immutable
// descriptors. The registries are populated once at construction and are
// safe for unlimited concurrent readers.
package layout
