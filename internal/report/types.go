// Package report defines the data model shared across the extraction and
// classification pipeline: extracted pages and tables, detection summaries,
// raw and classified measurements, and the final parsed report.
package report

// InputMode identifies how a document entered the pipeline.
type InputMode string

const (
	InputPDF   InputMode = "pdf"
	InputImage InputMode = "image"
	InputText  InputMode = "text"
)

// PageType classifies a page (or whole document) as machine text or scan.
type PageType string

const (
	PageText    PageType = "text"
	PageScanned PageType = "scanned"
	PageMixed   PageType = "mixed" // document-level only
)

// ExtractionMethod tags how a page's text was obtained.
type ExtractionMethod string

const (
	MethodNativeText  ExtractionMethod = "native_text"
	MethodOCR         ExtractionMethod = "ocr"
	MethodDirectInput ExtractionMethod = "direct_input"
)

// ExtractedPage holds one page's extracted text. Immutable once produced.
type ExtractedPage struct {
	PageNumber int              `json:"page_number"`
	Text       string           `json:"text"`
	Method     ExtractionMethod `json:"extraction_method"`
	Confidence float64          `json:"confidence"`
	CharCount  int              `json:"char_count"`
}

// ExtractedTable is a normalized table recovered from a PDF page or from
// pasted text. Headers and rows share the same column count.
type ExtractedTable struct {
	PageNumber int        `json:"page_number"`
	TableIndex int        `json:"table_index"`
	Headers    []string   `json:"headers"`
	Rows       [][]string `json:"rows"`
}

// PageDetection is the page-type verdict for a single page.
type PageDetection struct {
	PageNumber     int      `json:"page_number"`
	Type           PageType `json:"page_type"`
	CharCount      int      `json:"char_count"`
	PrintableRatio float64  `json:"printable_ratio"`
	Confidence     float64  `json:"confidence"`
}

// DetectionSummary aggregates per-page detections into a document verdict.
type DetectionSummary struct {
	OverallType PageType        `json:"overall_type"`
	TotalPages  int             `json:"total_pages"`
	Pages       []PageDetection `json:"pages"`
}

// ExtractionResult is the terminal artifact of the extraction stage.
// It is assembled once per ingested document and never mutated afterwards.
type ExtractionResult struct {
	InputMode           InputMode         `json:"input_mode"`
	FullText            string            `json:"full_text"`
	Pages               []ExtractedPage   `json:"pages"`
	Tables              []ExtractedTable  `json:"tables"`
	Detection           *DetectionSummary `json:"detection,omitempty"`
	TotalPages          int               `json:"total_pages"`
	TotalChars          int               `json:"total_chars"`
	Filename            string            `json:"filename,omitempty"`
	Warnings            []string          `json:"warnings"`
	EMRSource           string            `json:"emr_source,omitempty"`
	EMRSourceConfidence float64           `json:"emr_source_confidence,omitempty"`
}

// Known EMR/PACS source identifiers from fingerprinting.
const (
	EMREpic     = "epic"
	EMRCerner   = "cerner"
	EMRMeditech = "meditech"
)

// Sex is the patient sex context used for sex-qualified reference ranges.
type Sex string

const (
	SexUnknown Sex = ""
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
)

// Demographics carries patient context recovered from report text.
type Demographics struct {
	Age        int    `json:"age,omitempty"` // 0 = unknown
	Sex        Sex    `json:"sex,omitempty"`
	ReportDate string `json:"report_date,omitempty"`
	Physician  string `json:"physician,omitempty"`
}
