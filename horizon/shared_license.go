package horizon

// License is a legal document under which the resource is made available.
type License struct {
	// A short, standardized version of the license name.
	LicenseIdentifier *string `json:"licenseIdentifier,omitempty"`
	// Full license name or free text description of the rights.
	License                 string  `json:"license"`
	LicenseURI              *string `json:"licenseUri,omitempty"`
	LicenseIdentifierScheme *string `json:"licenseIdentifierScheme,omitempty"`
	SchemeURI               *string `json:"schemeUri,omitempty"`
}

func (License) RecordType() RecordType { return RecordTypeLicense }
