// Package fieldpath defines the dotted path grammar used to address controls
// in a comparison form and the pure operations over it: classification into
// plain/full-item/subfield kinds, base path and index extraction, relative
// path resolution, and literal index remapping. Every operation is total over
// arbitrary strings; unrecognized input degrades to the plain classification,
// an absent index, or an unchanged path instead of failing, so a malformed
// path coming out of a rendering layer can never break a copy interaction.
package fieldpath
