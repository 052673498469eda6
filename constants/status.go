package constants

// ExtractionStatus is the canonical status for rows in the extraction table.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusRunning   ExtractionStatus = "RUNNING"   // in progress
	StatusExtracted ExtractionStatus = "EXTRACTED" // essential fields found
	StatusEmpty     ExtractionStatus = "EMPTY"     // no essential fields, manual entry needed
	StatusFailed    ExtractionStatus = "FAILED"    // terminal failure
)

// POStatus mirrors the upload-time check of a PO number against earlier extractions.
type POStatus string

const (
	POStatusNew       POStatus = "new"
	POStatusDuplicate POStatus = "duplicate"
	POStatusMissing   POStatus = "missing"
)
