package analyzer

import "regexp"

// Category identifies one of the fixed legal risk categories the analyzer
// detects. The numeric order is the detection order.
type Category int

const (
	CategoryAutoRenewal Category = iota
	CategoryTerminationPenalties
	CategoryLiabilityLimitations
	CategoryIndemnification
	CategoryNonCompete
	CategoryIntellectualProperty
	CategoryJurisdiction
	CategoryDisputeResolution
	CategoryChangeOfTerms
	CategoryLatePayment
	CategoryMinimumCommitment
	CategoryDataPrivacy
	CategoryAssignment

	numCategories
)

var categoryNames = [numCategories]string{
	CategoryAutoRenewal:          "Auto-renewal",
	CategoryTerminationPenalties: "Termination penalties",
	CategoryLiabilityLimitations: "Liability limitations",
	CategoryIndemnification:      "Indemnification",
	CategoryNonCompete:           "Non-compete",
	CategoryIntellectualProperty: "Intellectual property rights",
	CategoryJurisdiction:         "Jurisdiction and governing law",
	CategoryDisputeResolution:    "Dispute resolution",
	CategoryChangeOfTerms:        "Change of terms",
	CategoryLatePayment:          "Late payment penalties",
	CategoryMinimumCommitment:    "Minimum commitment",
	CategoryDataPrivacy:          "Data usage and privacy",
	CategoryAssignment:           "Assignment",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// categoryDef bundles everything the analyzer knows about one risk category:
// the detection patterns (first pattern with a match wins), the static
// explanations shown to the user, and the severity rule table consumed by
// CalculateRiskLevel. Severity level 1 is the baseline and has no keywords.
type categoryDef struct {
	cat         Category
	patterns    []*regexp.Regexp
	explanation string
	simplified  string
	severity    map[int][]string
}

// reICompile compiles a pattern with case-insensitive matching. All detection
// patterns match case-insensitively; detection accuracy depends on it.
func reICompile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

// riskCategories is the registry. It is built once at init and never mutated,
// so concurrent analyses need no locking.
var riskCategories = []categoryDef{
	{
		cat: CategoryAutoRenewal,
		patterns: []*regexp.Regexp{
			reICompile(`auto(?:matic(?:ally)?)?[\s-]*renew`),
			reICompile(`renew(?:s|ed|al)?[\s\w]{1,30}auto(?:matic(?:ally)?)?`),
			reICompile(`(?:shall|will|may)[\s\w]{1,30}renew(?:s|ed|al)?[\s\w]{1,30}(?:unless|without|except|if)[\s\w]{1,50}(?:notice|notif|cancel)`),
			reICompile(`continue(?:s|d)?[\s\w]{1,30}(?:for|until|period|year|month)[\s\w]{1,30}(?:unless|without|except)`),
		},
		explanation: "This clause automatically extends your contract for additional periods unless you take specific action to cancel it. You may be locked into unwanted renewals if you miss the cancellation window.",
		simplified:  "This means the contract will keep renewing automatically unless you specifically cancel it before the deadline.",
		severity: map[int][]string{
			2: {"30 day", "thirty day", "monthly", "quarterly"},
			3: {"automatic", "shall renew", "will renew"},
			4: {"without notice", "without prior notice", "unless notified"},
			5: {"sole discretion", "no obligation to notify", "automatically renew"},
		},
	},
	{
		cat: CategoryTerminationPenalties,
		patterns: []*regexp.Regexp{
			reICompile(`(?:terminat(?:e|ion|ing)|cancel(?:lation)?)[\s\w]{1,50}(?:fee|penalt|charg|pay)`),
			reICompile(`(?:fee|penalt|charg|pay)[\s\w]{1,50}(?:terminat(?:e|ion|ing)|cancel(?:lation)?)`),
			reICompile(`(?:early|prior|before)[\s\w]{1,30}(?:terminat(?:e|ion|ing)|cancel(?:lation)?)[\s\w]{1,50}(?:fee|penalt|charg|pay|liabl)`),
			reICompile(`(?:liquidated damages|compensation)[\s\w]{1,50}(?:terminat(?:e|ion|ing)|cancel(?:lation)?)`),
		},
		explanation: "This clause requires you to pay a penalty or fee if you terminate the contract early. This could result in unexpected costs if you need to end the agreement before its natural term.",
		simplified:  "If you end the contract early, you'll need to pay an extra fee or penalty.",
		severity: map[int][]string{
			2: {"fee", "charge", "payment"},
			3: {"penalty", "liquidated damages", "compensation"},
			4: {"immediately due", "full payment", "remaining balance"},
			5: {"non-refundable", "no refund", "forfeit", "waive right"},
		},
	},
	{
		cat: CategoryLiabilityLimitations,
		patterns: []*regexp.Regexp{
			reICompile(`(?:limit(?:s|ed|ing|ation)?|cap(?:s|ped)?)[\s\w]{1,50}(?:liab(?:le|ility)|damages|responsib(?:le|ility))`),
			reICompile(`(?:no|not|never)[\s\w]{1,30}(?:liab(?:le|ility)|damages|responsib(?:le|ility))`),
			reICompile(`(?:disclaim(?:s|er)?|waive(?:s|r)?)[\s\w]{1,30}(?:liab(?:le|ility)|damages|warranty|warranties)`),
			reICompile(`under no circumstances[\s\w]{1,50}(?:liab(?:le|ility)|damages|responsib(?:le|ility))`),
		},
		explanation: "This clause limits or removes the other party's liability for damages, even if they're at fault. This may leave you without recourse if you suffer financial losses due to their actions or negligence.",
		simplified:  "The other party won't be fully responsible for damages they cause, limiting your ability to seek compensation if things go wrong.",
		severity: map[int][]string{
			2: {"reasonable", "liability limited to", "cap on damages"},
			3: {"waives", "disclaims", "excludes liability"},
			4: {"no liability", "not liable", "in no event"},
			5: {"gross negligence", "all liability", "under no circumstances"},
		},
	},
	{
		cat: CategoryIndemnification,
		patterns: []*regexp.Regexp{
			reICompile(`indemnif(?:y|ication|ies)`),
			reICompile(`hold[\s\w]{1,20}harmless`),
			reICompile(`defend(?:s)?[\s\w]{1,30}(?:against|from|for)`),
			reICompile(`protect(?:s)?[\s\w]{1,30}(?:against|from|for)[\s\w]{1,30}(?:claims|suits|actions|demands)`),
		},
		explanation: "This clause requires you to defend the other party from third-party claims and cover their legal costs and damages. This could expose you to significant financial risk beyond the value of the contract itself.",
		simplified:  "You must pay for any legal problems the other party faces because of your actions, including their lawyer fees and any damages.",
		severity: map[int][]string{
			2: {"indemnify", "hold harmless"},
			3: {"defend", "all costs", "all expenses"},
			4: {"third party claims", "attorneys' fees", "court costs"},
			5: {"unlimited", "unconditional", "sole discretion"},
		},
	},
	{
		cat: CategoryNonCompete,
		patterns: []*regexp.Regexp{
			reICompile(`non[\s-]*compet(?:e|ition)`),
			reICompile(`(?:shall|will|must)[\s\w]{1,30}not[\s\w]{1,50}compet(?:e|ing)`),
			reICompile(`(?:refrain|abstain|forbidden|prohibited)[\s\w]{1,30}(?:compet(?:e|ing)|similar[\s\w]{1,20}business)`),
			reICompile(`(?:restrict(?:ed|ion)?|limit(?:ed|ation)?)[\s\w]{1,30}(?:compet(?:e|ing)|similar[\s\w]{1,20}business)`),
		},
		explanation: "This clause restricts your ability to work in similar roles or start competing businesses for a period of time. This could limit your future career options or business opportunities.",
		simplified:  "You can't work for competitors or start a similar business for a certain period, which may limit your future job options.",
		severity: map[int][]string{
			2: {"restricted", "limited", "non-compete"},
			3: {"prohibited", "shall not", "must not"},
			4: {"worldwide", "all markets", "any capacity"},
			5: {"perpetual", "indefinite", "unrestricted scope"},
		},
	},
	{
		cat: CategoryIntellectualProperty,
		patterns: []*regexp.Regexp{
			reICompile(`(?:assign(?:s|ed|ment)?|transfer(?:s|red)?)[\s\w]{1,30}(?:intellectual property|IP|copyright|patent|trademark)`),
			reICompile(`(?:ownership|rights?)[\s\w]{1,30}(?:intellectual property|IP|copyright|patent|trademark)`),
			reICompile(`(?:work for hire|work(?:s)?[\s-]*made[\s-]*for[\s-]*hire)`),
			reICompile(`(?:retain(?:s|ed)?|maintain(?:s|ed)?)[\s\w]{1,30}(?:intellectual property|IP|copyright|patent|trademark)`),
		},
		explanation: "This clause determines who owns intellectual property created during the contract. You might be signing away rights to your work or creations without adequate compensation.",
		simplified:  "Any creative work or inventions you develop may belong to the other party, not you, even after the contract ends.",
		severity: map[int][]string{
			2: {"license", "permission", "authorization"},
			3: {"ownership", "rights", "title"},
			4: {"assign", "transfer", "work for hire"},
			5: {"perpetual", "irrevocable", "worldwide"},
		},
	},
	{
		cat: CategoryJurisdiction,
		patterns: []*regexp.Regexp{
			reICompile(`(?:govern(?:ed|ing)?|interpreted)[\s\w]{1,30}(?:laws?|statutes?)[\s\w]{1,30}(?:of|in)[\s\w]{1,20}([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)`),
			reICompile(`jurisdiction[\s\w]{1,30}(?:of|in)[\s\w]{1,20}([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)`),
			reICompile(`venue[\s\w]{1,30}(?:shall|will|must)[\s\w]{1,30}(?:be|in)[\s\w]{1,20}([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)`),
			reICompile(`disputes?[\s\w]{1,30}(?:resolved|settled|adjudicated)[\s\w]{1,30}(?:in|by)[\s\w]{1,20}([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)`),
		},
		explanation: "This clause specifies where and under which laws any disputes must be resolved. This could require you to litigate in a distant or unfavorable jurisdiction, increasing your costs.",
		simplified:  "If there's a legal dispute, you may have to go to court in a different location than where you live or do business, which could be expensive and inconvenient.",
		severity: map[int][]string{
			2: {"governing law", "jurisdiction"},
			3: {"exclusive jurisdiction", "venue"},
			4: {"waive objection", "consent to jurisdiction"},
			5: {"foreign jurisdiction", "inconvenient forum"},
		},
	},
	{
		cat: CategoryDisputeResolution,
		patterns: []*regexp.Regexp{
			reICompile(`(?:arbitrat(?:e|ion)|mediat(?:e|ion))`),
			reICompile(`alternative dispute resolution`),
			reICompile(`ADR`),
			reICompile(`(?:waive(?:s|r)?|relinquish(?:es)?)[\s\w]{1,50}(?:right|ability)[\s\w]{1,50}(?:jury|class action|court)`),
		},
		explanation: "This clause requires disputes to be resolved through specific methods like arbitration rather than courts. This may limit your legal options and rights, such as the ability to participate in class actions.",
		simplified:  "If you have a complaint, you can't go to regular court but must use a private dispute process that might be less favorable to you.",
		severity: map[int][]string{
			2: {"arbitration", "mediation", "dispute resolution"},
			3: {"binding", "final", "no appeal"},
			4: {"waive right to jury", "class action waiver"},
			5: {"confidential proceedings", "limited discovery"},
		},
	},
	{
		cat: CategoryChangeOfTerms,
		patterns: []*regexp.Regexp{
			reICompile(`(?:chang(?:e|es|ed|ing)|modif(?:y|ies|ied|ication)|amend(?:s|ed|ment)?)[\s\w]{1,50}(?:terms|provisions|conditions|agreement)[\s\w]{1,50}(?:at any time|without|unilateral|sole discretion)`),
			reICompile(`(?:reserv(?:e|es|ed)|right)[\s\w]{1,50}(?:chang(?:e|es|ed|ing)|modif(?:y|ies|ied|ication)|amend(?:s|ed|ment)?)[\s\w]{1,50}(?:terms|provisions|conditions|agreement)`),
			reICompile(`revised[\s\w]{1,30}(?:terms|provisions|conditions|agreement)[\s\w]{1,50}(?:post(?:s|ed|ing)|notif(?:y|ies|ication)|websit(?:e)?)`),
		},
		explanation: "This clause allows the other party to change contract terms unilaterally with minimal notice. This creates uncertainty as terms you agreed to could be changed without your explicit consent.",
		simplified:  "The other party can change the contract terms whenever they want, often with little notice, and continuing to use their service means you accept these changes.",
		severity: map[int][]string{
			2: {"modify", "amend", "update"},
			3: {"change", "revise", "alter"},
			4: {"sole discretion", "at any time", "without notice"},
			5: {"deemed acceptance", "continued use constitutes agreement"},
		},
	},
	{
		cat: CategoryLatePayment,
		patterns: []*regexp.Regexp{
			reICompile(`(?:late|overdue|past due)[\s\w]{1,30}(?:fee|charge|penalty|interest)`),
			reICompile(`(?:fee|charge|penalty|interest)[\s\w]{1,30}(?:late|overdue|past due)`),
			reICompile(`(?:failure|fails?)[\s\w]{1,30}(?:pay|payment)[\s\w]{1,30}(?:fee|charge|penalty|interest)`),
			reICompile(`interest[\s\w]{1,30}(?:rate|percent|%)[\s\w]{1,30}([0-9]+)`),
		},
		explanation: "This clause imposes additional charges or interest when payments are late. These can quickly accumulate and significantly increase your total costs if you face temporary cash flow issues.",
		simplified:  "If you pay late, you'll be charged extra fees or interest, which can add up quickly if you miss payment deadlines.",
		severity: map[int][]string{
			2: {"interest", "late fee", "additional charge"},
			3: {"compound", "accumulate", "accrue"},
			4: {"immediate termination", "acceleration", "all amounts due"},
			5: {"excessive rate", "maximum allowed by law"},
		},
	},
	{
		cat: CategoryMinimumCommitment,
		patterns: []*regexp.Regexp{
			reICompile(`minimum[\s\w]{1,30}(?:purchase|spend|payment|fee|commitment|guarantee|volume)`),
			reICompile(`(?:commit(?:s|ment)?|guarantee(?:s|d)?)[\s\w]{1,30}minimum[\s\w]{1,30}(?:purchase|spend|payment|fee|volume)`),
			reICompile(`at least[\s\w]{1,30}(?:\$[0-9,.]+|[0-9]+\s*%)`),
			reICompile(`(?:shortfall|make-up)[\s\w]{1,30}(?:fee|charge|payment)`),
		},
		explanation: "This clause requires you to purchase or pay a minimum amount regardless of your actual needs. You may end up paying for unused services or products if your requirements change.",
		simplified:  "You must spend at least a certain amount, even if you don't use all the services or products, so you might pay for things you don't need.",
		severity: map[int][]string{
			2: {"minimum", "at least", "not less than"},
			3: {"guarantee", "commit", "ensure"},
			4: {"shortfall", "make-up payment", "true-up"},
			5: {"non-refundable", "no credit", "forfeit"},
		},
	},
	{
		cat: CategoryDataPrivacy,
		patterns: []*regexp.Regexp{
			reICompile(`(?:collect(?:s|ed|ion)?|use(?:s|d)?|shar(?:e|es|ed|ing)|process(?:es|ed|ing)?)[\s\w]{1,50}(?:data|information|personal information)`),
			reICompile(`(?:consent(?:s|ed|ing)?|agree(?:s|d|ment)?)[\s\w]{1,50}(?:collect(?:s|ed|ion)?|use(?:s|d)?|shar(?:e|es|ed|ing)|process(?:es|ed|ing)?)[\s\w]{1,50}(?:data|information)`),
			reICompile(`(?:privacy[\s\w]{1,10}policy|data[\s\w]{1,10}policy)`),
			reICompile(`third(?:[\s-])*part(?:y|ies)`),
		},
		explanation: "This clause governs how your data can be collected, used, and shared. It may allow broader usage of your information than you'd expect, potentially compromising privacy or confidentiality.",
		simplified:  "The other party can collect and use your information in various ways, possibly sharing it with others or using it for marketing purposes.",
		severity: map[int][]string{
			2: {"collect", "use", "process"},
			3: {"share", "disclose", "transfer"},
			4: {"third party", "affiliates", "partners"},
			5: {"sell", "monetize", "unlimited rights"},
		},
	},
	{
		cat: CategoryAssignment,
		patterns: []*regexp.Regexp{
			reICompile(`assign(?:s|ed|ment)?[\s\w]{1,30}(?:this agreement|the agreement|this contract|rights|obligations)`),
			reICompile(`(?:agreement|contract|rights|obligations)[\s\w]{1,30}(?:assign(?:s|ed|able|ment)?|transfer(?:s|red|able)?)`),
			reICompile(`(?:assign|transfer)[\s\w]{1,50}without[\s\w]{1,30}consent`),
			reICompile(`(?:successors|assigns)[\s\w]{1,30}(?:bind(?:s|ing)?|inure)`),
		},
		explanation: "This clause controls whether the contract can be handed to another party. A one-sided assignment right means you could end up bound to a company you never agreed to deal with, while you remain unable to transfer your own obligations.",
		simplified:  "The other party may be able to hand this contract to someone else without asking you, but you usually can't do the same.",
		severity: map[int][]string{
			2: {"assign", "transfer"},
			3: {"without consent", "successors", "affiliate"},
			4: {"sole discretion", "any third party", "without your consent"},
			5: {"unconditional", "no consent required", "free to assign"},
		},
	},
}
