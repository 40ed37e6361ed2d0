// Package macro is the library of parameterized table generators the
// report documents invoke. Each macro is a pure function: typed inputs
// plus a Config produce one self-contained Markdown fragment (a pipe
// table and its caption), with no global state and no side effects.
//
// Rendering policy shared by every macro: row counts follow the shortest
// governing input sequence, an empty governing sequence renders a
// header-only table, optional row groups are omitted by the caller
// rather than rendered empty, and every numeric cell goes through
// pkg/format so a non-finite value aborts the render instead of printing
// a placeholder.
package macro
