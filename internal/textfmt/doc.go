// Package textfmt provides display helpers for user-facing text: truncation,
// UTF-8 aware word wrapping, URL shortening, and password generation.
//
// All widths and limits count Unicode code points, not bytes.
package textfmt
