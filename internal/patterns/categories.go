package patterns

import "regexp"

// Provider binds a provider name to the aliases that identify it in text.
type Provider struct {
	Name    string
	Aliases []string
}

// CategoryRule drives the keyword cascade of the classifier. Rules are
// evaluated in table order; the first keyword hit in a rule decides the
// category, refined by providers and context phrases where present.
type CategoryRule struct {
	Name           string
	Keywords       []string
	Providers      []Provider
	ContextPhrases []*regexp.Regexp
	Exceptions     []string
}

// DefaultCategoryRules in evaluation order. The credit, debit and
// informational rules are handled by dedicated branches of the cascade and
// skipped by the specialized scan.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{
			Name: "loan",
			Keywords: []string{
				"loan", "emi", "equated monthly installment", "repayment", "disbursement",
				"borrow", "lend", "credit limit", "credit line", "credit score", "creditline",
				"pre-approved", "sanctioned", "borrow limit", "loan a/c", "loan account",
			},
			Providers: []Provider{
				{Name: "slice", Aliases: []string{"slice", "pluxee"}},
				{Name: "airtel", Aliases: []string{"airtel black", "airtel payments bank"}},
				{Name: "hdfc", Aliases: []string{"hdfc credit", "hdfc bank credit"}},
				{Name: "icici", Aliases: []string{"icici credit", "icici bank credit"}},
				{Name: "kotak", Aliases: []string{"kotak credit", "kotak 811"}},
				{Name: "cred", Aliases: []string{"cred"}},
				{Name: "lazyPay", Aliases: []string{"lazypay", "lazy pay"}},
				{Name: "sbi", Aliases: []string{"sbi credit", "state bank credit"}},
			},
			ContextPhrases: []*regexp.Regexp{
				regexp.MustCompile(`repay\s+(?:rs|inr)?\s*\d+\.?\d*`),
				regexp.MustCompile(`credit\s+score`),
				regexp.MustCompile(`slice\s+app`),
				regexp.MustCompile(`airtel\s+black\s+id`),
				regexp.MustCompile(`emi\s+for`),
				regexp.MustCompile(`due\s+date`),
			},
		},
		{
			Name: "credit",
			Keywords: []string{
				"credited", "received", "load", "added", "topped up", "deposit",
				"income", "salary", "recredited", "refund", "reversal", "cashback",
				"interest", "bonus", "credit", "reimbursed", "transfer received",
				"funds added", "amount credited", "deposit successful",
			},
			Exceptions: []string{
				"reversal of credit", "credit card payment", "credit score",
				"credit limit", "credit line", "creditline",
			},
		},
		{
			Name: "debit",
			Keywords: []string{
				"debited", "spent", "withdrawn", "paid", "sent", "deducted",
				"purchase", "billed", "used", "withdrew", "transfer", "payment",
				"utilized", "charged", "reversal", "outstanding", "minimum due",
				"past due", "overdue", "amount debited", "transaction successful",
			},
			Exceptions: []string{
				"reversal of debit", "credit card payment", "emi payment",
			},
		},
		{
			Name: "investment",
			Keywords: []string{
				"mf", "mutual fund", "sip", "stock", "equity", "investment",
				"portfolio", "groww", "coin", "zerodha", "upstox", "mf red",
				"mutualfund", "investment account",
			},
			ContextPhrases: []*regexp.Regexp{
				regexp.MustCompile(`mf\s+investment`),
				regexp.MustCompile(`sip\s+on`),
				regexp.MustCompile(`stock\s+purchased`),
			},
		},
		{
			Name: "insurance",
			Keywords: []string{
				"insurance", "premium", "policy", "claim", "renewal", "term plan",
				"health insurance", "life insurance", "car insurance", "bike insurance",
			},
			Providers: []Provider{
				{Name: "lic", Aliases: []string{"lic"}},
				{Name: "bharti axa", Aliases: []string{"bharti axa"}},
				{Name: "hdfc ergo", Aliases: []string{"hdfc ergo"}},
				{Name: "icici lombard", Aliases: []string{"icici lombard"}},
				{Name: "tata aig", Aliases: []string{"tata aig"}},
			},
		},
		{
			Name: "emi",
			Keywords: []string{
				"emi", "equated monthly installment", "installment", "emi payment",
				"emi due", "emi processed", "emi debited",
			},
			ContextPhrases: []*regexp.Regexp{
				regexp.MustCompile(`emi\s+for\s+\w+`),
				regexp.MustCompile(`emi\s+processed\s+for`),
			},
		},
		{
			Name: "recharge",
			Keywords: []string{
				"recharge", "topup", "top-up", "validity", "mobile recharge",
				"dth recharge", "data pack", "voice plan", "renewal",
			},
			Providers: []Provider{
				{Name: "airtel", Aliases: []string{"airtel"}},
				{Name: "jio", Aliases: []string{"jio"}},
				{Name: "vi", Aliases: []string{"vi"}},
				{Name: "vodafone", Aliases: []string{"vodafone"}},
				{Name: "idea", Aliases: []string{"idea"}},
				{Name: "bsnl", Aliases: []string{"bsnl"}},
				{Name: "reliance", Aliases: []string{"reliance"}},
			},
		},
		{
			Name: "atm",
			Keywords: []string{
				"atm", "cash withdrawal", "cash withdraw", "withdrawn at atm",
				"atm transaction", "atm withdrawal",
			},
		},
		{
			Name: "cheque",
			Keywords: []string{
				"cheque", "check", "cheque deposit", "cheque cleared",
				"cheque bounce", "cheque issued",
			},
		},
		{
			Name: "informational",
			Keywords: []string{
				"balance", "fund balance", "security balance", "portfolio", "update",
				"notification", "alert", "reminder", "promotional", "offer", "deal",
				"price", "rate", "buy", "sell", "investment opportunity", "market update",
			},
			Exceptions: []string{
				"debited", "credited", "paid", "sent", "received", "transfer", "recharge",
				"withdrawn", "billed", "utilized", "charged", "repayment", "emi",
			},
		},
	}
}

// InvestmentPlatforms recognized by the merchant extractor, in scan order.
var InvestmentPlatforms = []string{"groww", "coin", "zerodha", "upstox", "mf utility"}

// InformationalAppTriggers gate the app-name merchant patterns.
var InformationalAppTriggers = []string{"app", "buy", "sell"}

// InformationalBalanceTriggers gate the institution merchant pattern.
var InformationalBalanceTriggers = []string{"balance", "fund"}

// Info-type trigger word groups, checked in order.
var (
	InfoTypeMarketWords    = []string{"price", "rate"}
	InfoTypeBalanceWords   = []string{"balance", "fund"}
	InfoTypePromotionWords = []string{"offer", "deal", "buy"}
)
