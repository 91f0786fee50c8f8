package guardrail

const (
	TopicTypeDeny = "DENY"

	ActionBlock     = "BLOCK"
	ActionAnonymize = "ANONYMIZE"
	ActionNone      = "NONE"

	StrengthNone   = "NONE"
	StrengthLow    = "LOW"
	StrengthMedium = "MEDIUM"
	StrengthHigh   = "HIGH"

	FilterHate         = "HATE"
	FilterInsults      = "INSULTS"
	FilterSexual       = "SEXUAL"
	FilterViolence     = "VIOLENCE"
	FilterMisconduct   = "MISCONDUCT"
	FilterPromptAttack = "PROMPT_ATTACK"

	ModalityText  = "TEXT"
	ModalityImage = "IMAGE"

	ManagedProfanity = "PROFANITY"

	GroundingTypeGrounding = "GROUNDING"
	GroundingTypeRelevance = "RELEVANCE"
)

var (
	contentFilterTypes = set(FilterHate, FilterInsults, FilterSexual, FilterViolence, FilterMisconduct, FilterPromptAttack)
	strengths          = set(StrengthNone, StrengthLow, StrengthMedium, StrengthHigh)
	modalities         = set(ModalityText, ModalityImage)
	blockActions       = set(ActionBlock, ActionNone)
	piiActions         = set(ActionBlock, ActionAnonymize, ActionNone)
	groundingTypes     = set(GroundingTypeGrounding, GroundingTypeRelevance)
	managedWordTypes   = set(ManagedProfanity)

	// piiEntityTypes lists the entity types the service recognises.
	piiEntityTypes = set(
		"ADDRESS", "AGE", "AWS_ACCESS_KEY", "AWS_SECRET_KEY", "CA_HEALTH_NUMBER",
		"CA_SOCIAL_INSURANCE_NUMBER", "CREDIT_DEBIT_CARD_CVV", "CREDIT_DEBIT_CARD_EXPIRY",
		"CREDIT_DEBIT_CARD_NUMBER", "DRIVER_ID", "EMAIL", "INTERNATIONAL_BANK_ACCOUNT_NUMBER",
		"IP_ADDRESS", "LICENSE_PLATE", "MAC_ADDRESS", "NAME", "PASSWORD", "PHONE", "PIN",
		"SWIFT_CODE", "UK_NATIONAL_HEALTH_SERVICE_NUMBER", "UK_NATIONAL_INSURANCE_NUMBER",
		"UK_UNIQUE_TAXPAYER_REFERENCE_NUMBER", "URL", "USERNAME", "US_BANK_ACCOUNT_NUMBER",
		"US_BANK_ROUTING_NUMBER", "US_INDIVIDUAL_TAX_IDENTIFICATION_NUMBER", "US_PASSPORT_NUMBER",
		"US_SOCIAL_SECURITY_NUMBER", "VEHICLE_IDENTIFICATION_NUMBER",
	)
)

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}
