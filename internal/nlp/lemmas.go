package nlp

import "strings"

// verbLemmas maps inflected forms of the transaction verbs to their lemma.
// The tagger supplies part of speech; this table supplies the base form for
// the verbs the classifier cares about.
var verbLemmas = map[string]string{
	"pay": "pay", "pays": "pay", "paid": "pay", "paying": "pay",
	"send": "send", "sends": "send", "sent": "send", "sending": "send",
	"transfer": "transfer", "transfers": "transfer", "transferred": "transfer", "transferring": "transfer",
	"spend": "spend", "spends": "spend", "spent": "spend", "spending": "spend",
	"use": "use", "uses": "use", "used": "use", "using": "use",
	"purchase": "purchase", "purchases": "purchase", "purchased": "purchase", "purchasing": "purchase",
	"withdraw": "withdraw", "withdraws": "withdraw", "withdrew": "withdraw", "withdrawn": "withdraw", "withdrawing": "withdraw",
	"recharge": "recharge", "recharges": "recharge", "recharged": "recharge", "recharging": "recharge",
	"debit": "debit", "debits": "debit", "debited": "debit",
	"credit": "credit", "credits": "credit", "credited": "credit",
	"receive": "receive", "receives": "receive", "received": "receive", "receiving": "receive",
	"charge": "charge", "charges": "charge", "charged": "charge", "charging": "charge",
	"bill": "bill", "bills": "bill", "billed": "bill",
	"deduct": "deduct", "deducts": "deduct", "deducted": "deduct",
}

// lemmatize returns the base form for known verb inflections, otherwise the
// lowercased token itself.
func lemmatize(word string) string {
	lower := strings.ToLower(word)
	if lemma, ok := verbLemmas[lower]; ok {
		return lemma
	}
	return lower
}
