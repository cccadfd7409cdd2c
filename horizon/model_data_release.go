package horizon

// DataRelease extends Dataset with the properties used to curate data within
// the repository. Status can be assigned freely; no transitions are enforced.
type DataRelease struct {
	Dataset

	Status          StatusEnum          `json:"status"`
	UsgsReleaseType UsgsReleaseTypeEnum `json:"usgsReleaseType"`
}

func (DataRelease) RecordType() RecordType { return RecordTypeDataRelease }
