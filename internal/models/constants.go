package models

// ParserVersion is the fixed tag stamped on every produced record.
const ParserVersion = "sms_universal_v4"

// Transaction categories assigned by the classifier.
const (
	CategoryLoan          = "loan"
	CategoryCredit        = "credit"
	CategoryDebit         = "debit"
	CategoryInvestment    = "investment"
	CategoryInsurance     = "insurance"
	CategoryEMI           = "emi"
	CategoryRecharge      = "recharge"
	CategoryATM           = "atm"
	CategoryCheque        = "cheque"
	CategoryInformational = "informational"
)

// Subcategories used for debit payment channels.
const (
	SubcategoryUPI     = "upi"
	SubcategoryATM     = "atm"
	SubcategoryPOS     = "pos"
	SubcategoryGeneral = "general"
	SubcategoryGeneric = "generic"
)

// Informational message types.
const (
	InfoTypeMarketUpdate  = "market_update"
	InfoTypeBalanceUpdate = "balance_update"
	InfoTypePromotion     = "promotion"
)
