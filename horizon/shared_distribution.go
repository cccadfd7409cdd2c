package horizon

// Distribution is a specific representation of a dataset or component.
type Distribution struct {
	Title *string `json:"title,omitempty"`
	// File name of downloadable files.
	Name *string `json:"name,omitempty"`
	// Kind of distribution, e.g. Landing Page, Original Metadata, WMS Service.
	Description *string `json:"description,omitempty"`
	// Only used when no IANA media type is available.
	Format *string `json:"format,omitempty"`
	// IANA media type.
	MediaType   *string   `json:"mediaType,omitempty" validate:"omitempty,media_type"`
	DownloadURL *string   `json:"downloadURL,omitempty"`
	AccessURL   *string   `json:"accessURL,omitempty"`
	ByteSize    *int64    `json:"byteSize,omitempty" validate:"omitempty,gte=0"`
	Checksum    *Checksum `json:"checksum,omitempty"`
	// The person or service that last modified the distribution or uploaded
	// the file.
	ModifiedBy Entity    `json:"modifiedBy"`
	Modified   Timestamp `json:"modified"`
	// Whether an image file should be used as a preview image.
	UseForPreview bool `json:"useForPreview"`
}

func (Distribution) RecordType() RecordType { return RecordTypeDistribution }

// Checksum allows to check the integrity of the contents of a file.
type Checksum struct {
	// SPDX algorithm name, e.g. SHA256.
	Algorithm string `json:"algorithm" validate:"spdx_algorithm"`
	// Lowercase hexadecimal digest.
	ChecksumValue string `json:"checksumValue" validate:"hexadecimal,lowercase"`
}

func (Checksum) RecordType() RecordType { return RecordTypeChecksum }
