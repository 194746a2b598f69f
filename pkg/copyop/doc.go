// Package copyop decides what copying a field path means and expands a copy
// trigger into the concrete source/target operations a mutation layer can
// apply. The decision is keyed purely on the path's kind: plain paths copy
// wholesale, full-item paths append a new list element, and subfield paths
// overwrite one field of an existing element. Resolution carries no state
// between calls; each trigger is decided on its own.
package copyop
