// Package hcl provides the HCL implementation of config.Loader. It parses
// registration files and translates their schema structs into the
// format-agnostic config model.
package hcl
