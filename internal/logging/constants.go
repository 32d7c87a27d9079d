package logging

// Standardized field names for structured logging. These keep log output
// consistent across the classifier, extractors and transport so entries can
// be filtered by category, rule or operation.
const (
	FieldCategory    = "category"
	FieldSubcategory = "subcategory"
	FieldConfidence  = "confidence"
	FieldOperation   = "operation"
	FieldRule        = "rule"
	FieldCurrency    = "currency"
	FieldAmount      = "amount"
	FieldMerchant    = "merchant"
	FieldCount       = "count"
	FieldDuration    = "duration_ms"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldError       = "error"
)
