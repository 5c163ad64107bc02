// Package chmod implements the file permission calculator widget.
//
// The canonical value is a 3×3 grid of booleans (owner, group, public × read, write,
// execute). Three strings are derived from it: the octal form ("755"), the symbolic
// form ("rwxr-xr-x") and the command ("chmod 755").
//
// Every edit recomputes the whole State from the grid. Octal and symbolic edits are
// applied only when complete and valid; otherwise the raw text is echoed in its field and
// the grid is left alone, so a user can type "7", "75", "755" without losing state.
//
// # HTTP Endpoints
//
//   - GET /chmod : initial state.
//   - POST /chmod/toggle : {"state", "who", "perm"}.
//   - POST /chmod/octal, POST /chmod/text : {"state", "value"}.
package chmod
