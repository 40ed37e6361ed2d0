// Package reports defines the built-in report documents: a shared base
// skeleton (heading, code reference, input data, topography, gust
// factor, results) and the building, sign and isolated roof documents
// that extend it. Derived documents replace the results block outright
// and extend the input block through a super call, so the shared
// sections render identically across report types.
package reports
