// Package schema holds the HCL decoding targets of registration files.
package schema

// Detection is the `detection` block of a registration.
type Detection struct {
	PublicOnly    *bool `hcl:"public_only,optional"`
	AnnotatedOnly *bool `hcl:"annotated_only,optional"`
	NamedOnly     *bool `hcl:"named_only,optional"`
}

// Registration is a `registration` block: a namespace, an optional detection
// policy and the registrars scanned under them.
type Registration struct {
	Namespace  string     `hcl:"namespace,label"`
	Detection  *Detection `hcl:"detection,block"`
	Registrars []string   `hcl:"registrars"`
}

// File represents the top-level structure of a registration file.
type File struct {
	Registrations []*Registration `hcl:"registration,block"`
}
