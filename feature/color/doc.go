// Package color implements the color helper widget.
//
// The canonical value is a 24-bit RGB color, shown three ways: uppercase hex ("FF8000"),
// decimal CSV ("255,128,0") and CMYK CSV ("0.0,0.4980392,1.0,0.0"). Hex and RGB
// round-trip exactly. CMYK is lossy: converting back truncates each channel to a byte.
//
// An invalid edit is echoed in its own field and leaves the other two alone.
//
// # Actions
//
// Darker, lighter and complement read the current hex field and feed the result through
// the RGB edit, so all three fields are rewritten. They do nothing while the hex field is
// invalid. Random reads three bytes from the host entropy source.
//
// # HTTP Endpoints
//
//   - POST /color/{hex|rgb|cmyk} : {"state", "value"}.
//   - POST /color/{darker|lighter|complement|random} : {"state"}.
package color
