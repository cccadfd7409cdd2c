package horizon

import "fmt"

// RecordType names a record type of the data model.
type RecordType string

const (
	RecordTypeCatalogedResource   RecordType = "CatalogedResource"
	RecordTypeDataset             RecordType = "Dataset"
	RecordTypeDataRelease         RecordType = "DataRelease"
	RecordTypeDistribution        RecordType = "Distribution"
	RecordTypeChecksum            RecordType = "Checksum"
	RecordTypeEntity              RecordType = "Entity"
	RecordTypeCreator             RecordType = "Creator"
	RecordTypeContributor         RecordType = "Contributor"
	RecordTypeLicense             RecordType = "License"
	RecordTypeLocation            RecordType = "Location"
	RecordTypeBoundingBox         RecordType = "BoundingBox"
	RecordTypeCentroid            RecordType = "Centroid"
	RecordTypeKeyword             RecordType = "Keyword"
	RecordTypeRelatedIdentifier   RecordType = "RelatedIdentifier"
	RecordTypeAlternateIdentifier RecordType = "AlternateIdentifier"
	RecordTypePeriodOfTime        RecordType = "PeriodOfTime"
	RecordTypeUsgsDataSource      RecordType = "UsgsDataSource"
	RecordTypeUsgsMissionArea     RecordType = "UsgsMissionArea"
	RecordTypeVersionHistory      RecordType = "VersionHistory"
	RecordTypeComponent           RecordType = "Component"
)

// Record is implemented by every record type of the data model.
type Record interface {
	RecordType() RecordType
}

// NewRecord returns a pointer to a zero record of the given type.
func NewRecord(rt RecordType) (Record, error) {
	var rec Record
	switch rt {
	case RecordTypeCatalogedResource:
		rec = &CatalogedResource{}
	case RecordTypeDataset:
		rec = &Dataset{}
	case RecordTypeDataRelease:
		rec = &DataRelease{}
	case RecordTypeDistribution:
		rec = &Distribution{}
	case RecordTypeChecksum:
		rec = &Checksum{}
	case RecordTypeEntity:
		rec = &Entity{}
	case RecordTypeCreator:
		rec = &Creator{}
	case RecordTypeContributor:
		rec = &Contributor{}
	case RecordTypeLicense:
		rec = &License{}
	case RecordTypeLocation:
		rec = &Location{}
	case RecordTypeBoundingBox:
		rec = &BoundingBox{}
	case RecordTypeCentroid:
		rec = &Centroid{}
	case RecordTypeKeyword:
		rec = &Keyword{}
	case RecordTypeRelatedIdentifier:
		rec = &RelatedIdentifier{}
	case RecordTypeAlternateIdentifier:
		rec = &AlternateIdentifier{}
	case RecordTypePeriodOfTime:
		rec = &PeriodOfTime{}
	case RecordTypeUsgsDataSource:
		rec = &UsgsDataSource{}
	case RecordTypeUsgsMissionArea:
		rec = &UsgsMissionArea{}
	case RecordTypeVersionHistory:
		rec = &VersionHistory{}
	case RecordTypeComponent:
		rec = &Component{}
	default:
		return nil, fmt.Errorf("unknown record type %q", rt)
	}
	return rec, nil
}

// String returns a pointer to s, handy for optional fields.
func String(s string) *string {
	return &s
}

// Int64 returns a pointer to n.
func Int64(n int64) *int64 {
	return &n
}
