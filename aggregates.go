package ofxparser

import (
	"strings"
	"sync"
)

var aggregatesMap map[string]struct{}
var initAggregatesMap sync.Once

// knownAggregates returns the shared set of known OFX aggregate tags. Aggregates contain other
// elements and always carry an explicit end tag, even in SGML documents. The set is read only.
func knownAggregates() map[string]struct{} {
	initAggregatesMap.Do(func() {
		var aggregates = []string{
			"OFX",
			// Signon
			"SIGNONMSGSRQV1", "SIGNONMSGSRSV1", "SONRQ", "SONRS", "STATUS", "FI",
			"PINCHRQ", "PINCHRS", "PINCHTRNRQ", "PINCHTRNRS", "CHALLENGERQ", "CHALLENGERS",
			"CHALLENGETRNRQ", "CHALLENGETRNRS", "MFACHALLENGERQ", "MFACHALLENGERS",
			"MFACHALLENGETRNRQ", "MFACHALLENGETRNRS", "MFACHALLENGE", "MFACHALLENGEA",
			// Signup
			"SIGNUPMSGSRQV1", "SIGNUPMSGSRSV1", "ACCTINFORQ", "ACCTINFORS", "ACCTINFOTRNRQ",
			"ACCTINFOTRNRS", "ACCTINFO", "BANKACCTINFO", "CCACCTINFO", "INVACCTINFO",
			"BPACCTINFO", "ENROLLRQ", "ENROLLRS", "ENROLLTRNRQ", "ENROLLTRNRS",
			"ACCTRQ", "ACCTRS", "ACCTTRNRQ", "ACCTTRNRS", "SVCADD", "SVCCHG", "SVCDEL",
			"CHGUSERINFORQ", "CHGUSERINFORS", "CHGUSERINFOTRNRQ", "CHGUSERINFOTRNRS",
			// Banking
			"BANKMSGSRQV1", "BANKMSGSRSV1", "STMTRQ", "STMTRS", "STMTTRNRQ", "STMTTRNRS",
			"STMTENDRQ", "STMTENDRS", "STMTENDTRNRQ", "STMTENDTRNRS", "CLOSING",
			"BANKACCTFROM", "BANKACCTTO", "CCACCTFROM", "CCACCTTO", "INCTRAN",
			"BANKTRANLIST", "STMTTRN", "PAYEE", "CURRENCY", "ORIGCURRENCY", "IMAGEDATA",
			"LEDGERBAL", "AVAILBAL", "BALLIST", "BAL", "MKTGINFO",
			"INTRARQ", "INTRARS", "INTRATRNRQ", "INTRATRNRS", "INTRAMODRQ", "INTRAMODRS",
			"INTRACANRQ", "INTRACANRS", "XFERINFO", "XFERPRCSTS",
			"INTERRQ", "INTERRS", "INTERTRNRQ", "INTERTRNRS", "EXTBANKACCTTO",
			"STPCHKRQ", "STPCHKRS", "STPCHKTRNRQ", "STPCHKTRNRS", "CHKRANGE", "CHKDESC",
			"STPCHKNUM",
			// Credit card
			"CREDITCARDMSGSRQV1", "CREDITCARDMSGSRSV1", "CCSTMTRQ", "CCSTMTRS",
			"CCSTMTTRNRQ", "CCSTMTTRNRS", "CCSTMTENDRQ", "CCSTMTENDRS", "CCSTMTENDTRNRQ",
			"CCSTMTENDTRNRS", "CCCLOSING", "REWARDINFO",
			// Investment
			"INVSTMTMSGSRQV1", "INVSTMTMSGSRSV1", "INVSTMTRQ", "INVSTMTRS", "INVSTMTTRNRQ",
			"INVSTMTTRNRS", "INVACCTFROM", "INVACCTTO", "INCPOS", "INVTRANLIST", "INVBANKTRAN",
			"INVPOSLIST", "INVBAL", "INV401K", "INV401KBAL", "INVOOLIST", "INVTRAN", "INVBUY",
			"INVSELL", "INVPOS", "SECID", "BUYDEBT", "BUYMF", "BUYOPT", "BUYOTHER", "BUYSTOCK",
			"CLOSUREOPT", "INCOME", "INVEXPENSE", "JRNLFUND", "JRNLSEC", "MARGININTEREST",
			"REINVEST", "RETOFCAP", "SELLDEBT", "SELLMF", "SELLOPT", "SELLOTHER", "SELLSTOCK",
			"SPLIT", "TRANSFER", "POSDEBT", "POSMF", "POSOPT", "POSOTHER", "POSSTOCK",
			"OO", "OOBUYDEBT", "OOBUYMF", "OOBUYOPT", "OOBUYOTHER", "OOBUYSTOCK", "OOSELLDEBT",
			"OOSELLMF", "OOSELLOPT", "OOSELLOTHER", "OOSELLSTOCK", "SWITCHMF",
			"MFASSETCLASS", "FIMFASSETCLASS", "PORTION", "FIPORTION",
			"CONTRIBSECURITIES", "CONTRIBINFO", "YEARTODATE", "INCLUSIVE", "VESTINFO",
			"LOANINFO", "INV401KSOURCE", "MATCHINFO", "EMPLOYERCONTRIBINFO",
			// Securities
			"SECLISTMSGSRQV1", "SECLISTMSGSRSV1", "SECLISTRQ", "SECLISTRS", "SECLISTTRNRQ",
			"SECLISTTRNRS", "SECLIST", "SECRQ", "SECINFO", "DEBTINFO", "MFINFO", "OPTINFO",
			"OTHERINFO", "STOCKINFO",
			// Bill payment
			"BILLPAYMSGSRQV1", "BILLPAYMSGSRSV1", "PMTRQ", "PMTRS", "PMTTRNRQ", "PMTTRNRS",
			"PMTINFO", "PMTPRCSTS", "PAYEERQ", "PAYEERS", "PAYEETRNRQ", "PAYEETRNRS",
			"PMTSYNCRQ", "PMTSYNCRS", "PAYEESYNCRQ", "PAYEESYNCRS", "EXTDPAYEE",
			// Email
			"EMAILMSGSRQV1", "EMAILMSGSRSV1", "MAILRQ", "MAILRS", "MAILTRNRQ", "MAILTRNRS",
			"MAIL", "MAILSYNCRQ", "MAILSYNCRS",
			// Profile
			"PROFMSGSRQV1", "PROFMSGSRSV1", "PROFRQ", "PROFRS", "PROFTRNRQ", "PROFTRNRS",
			"MSGSETLIST", "SIGNONINFOLIST", "SIGNONINFO", "MSGSETCORE",
			// Tax
			"TAX1099MSGSRQV1", "TAX1099MSGSRSV1", "TAX1099RQ", "TAX1099RS",
			"TAX1099TRNRQ", "TAX1099TRNRS",
		}
		aggregatesMap = make(map[string]struct{}, len(aggregates))
		for _, a := range aggregates {
			aggregatesMap[a] = struct{}{}
		}
	})
	return aggregatesMap
}

// GetAggregates returns a copy of the known aggregate tags.
func GetAggregates() map[string]struct{} {
	known := knownAggregates()
	result := make(map[string]struct{}, len(known))
	for a := range known {
		result[a] = struct{}{}
	}
	return result
}

// IsAggregate returns true if the given tag is a known aggregate tag.
func IsAggregate(tag string) bool {
	_, found := knownAggregates()[strings.ToUpper(tag)]
	return found
}

// aggregateSet is the default table extended with caller supplied tags.
type aggregateSet map[string]struct{}

func newAggregateSet(extra ...string) aggregateSet {
	known := knownAggregates()
	set := make(aggregateSet, len(known)+len(extra))
	for a := range known {
		set[a] = struct{}{}
	}
	for _, a := range extra {
		set[strings.ToUpper(strings.TrimSpace(a))] = struct{}{}
	}
	return set
}

func (s aggregateSet) contains(tag string) bool {
	_, found := s[strings.ToUpper(tag)]
	return found
}
