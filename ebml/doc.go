// Package ebml implements the EBML framing layer under Matroska/WebM:
// variable-length integers, element headers, typed leaf body codecs, and
// the element read/write protocol in blocking and context-aware flavors.
package ebml
