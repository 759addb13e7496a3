// Package win32 provides the Windows platform backend over Microsoft Active
// Accessibility (oleacc). Importing it registers the provider.
//
// The backend needs 64-bit Windows; on any other target the package is empty
// and platform.NewProvider reports ErrUnsupported.
package win32
