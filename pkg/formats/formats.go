// Package formats reads and writes the YAML documents exchanged with the
// geometry layer and mesh export.
package formats
