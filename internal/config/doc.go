// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from various
// sources.
//
// A Model is a list of registration blocks. Each block names a namespace,
// a detection mode and the registrars scanned under them. Concrete loaders,
// such as the HCL one, live in separate packages.
package config
