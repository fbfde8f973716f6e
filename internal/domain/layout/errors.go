package layout

import "github.com/furqanmax/simplepos-printing/internal/domain/shared"

// Errors returned by the layout core. Everything else that can go wrong
// during planning is an advisory attached to the plan, never an error.
var (
	// ErrUnknownFormat indicates a format id that is not in the registry
	ErrUnknownFormat = shared.NewDomainError("UNKNOWN_FORMAT", "Unknown format identifier")

	// ErrUnknownStyle indicates a style id that is not in the registry
	ErrUnknownStyle = shared.NewDomainError("UNKNOWN_STYLE", "Unknown style identifier")

	// ErrNoCompatibleFormat indicates the printer supports no format of the
	// requested classification; substitution across classifications is never
	// performed
	ErrNoCompatibleFormat = shared.NewDomainError("NO_COMPATIBLE_FORMAT", "Printer supports no format of the requested classification")

	// ErrInsufficientFormat indicates content cannot fit the format even
	// after every mitigation; only reachable with malformed custom
	// descriptors
	ErrInsufficientFormat = shared.NewDomainError("INSUFFICIENT_FORMAT", "Content cannot fit within the format's minimum constraints")
)
